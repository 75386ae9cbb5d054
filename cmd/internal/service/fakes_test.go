package service

import (
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/domain/events"
	"boycottwatch/cmd/internal/infrastructure/logodev"
	"boycottwatch/cmd/internal/utils/validators"
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

var errDatabaseDown = errors.New("database down")

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("isodate", validators.ISODate))
	require.NoError(t, validate.RegisterValidation("nodupes", validators.NoDupes))
	return validate
}

type fakeBrandRepo struct {
	brands map[int]*entity.Brand
	nextID int

	findAllErr  error
	findByIDErr error
	saveErr     error
}

func newFakeBrandRepo(brands ...*entity.Brand) *fakeBrandRepo {
	repo := &fakeBrandRepo{brands: map[int]*entity.Brand{}, nextID: 1}
	for _, brand := range brands {
		repo.brands[brand.ID] = brand
		if brand.ID >= repo.nextID {
			repo.nextID = brand.ID + 1
		}
	}
	return repo
}

func (f *fakeBrandRepo) FindAll() ([]*entity.Brand, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}

	var brands []*entity.Brand
	for _, brand := range f.brands {
		brands = append(brands, brand)
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].ID < brands[j].ID })
	return brands, nil
}

func (f *fakeBrandRepo) FindByID(id int) (*entity.Brand, error) {
	if f.findByIDErr != nil {
		return nil, f.findByIDErr
	}
	return f.brands[id], nil
}

func (f *fakeBrandRepo) FindByNameCI(name string) (*entity.Brand, error) {
	for _, brand := range f.brands {
		if equalFold(brand.Name, name) {
			return brand, nil
		}
	}
	return nil, nil
}

func (f *fakeBrandRepo) Save(brand *entity.Brand) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	if brand.ID == 0 {
		brand.ID = f.nextID
		f.nextID++
	}
	f.brands[brand.ID] = brand
	return nil
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

type fakeBeneficiaryRepo struct {
	beneficiaries map[int]*entity.Beneficiary
	links         []*entity.BrandBeneficiary
	nextID        int

	findLinksErr error
	saveErr      error
}

func newFakeBeneficiaryRepo(beneficiaries ...*entity.Beneficiary) *fakeBeneficiaryRepo {
	repo := &fakeBeneficiaryRepo{beneficiaries: map[int]*entity.Beneficiary{}, nextID: 1}
	for _, b := range beneficiaries {
		repo.beneficiaries[b.ID] = b
		if b.ID >= repo.nextID {
			repo.nextID = b.ID + 1
		}
	}
	return repo
}

func (f *fakeBeneficiaryRepo) FindAll() ([]*entity.Beneficiary, error) {
	var beneficiaries []*entity.Beneficiary
	for _, b := range f.beneficiaries {
		beneficiaries = append(beneficiaries, b)
	}
	sort.Slice(beneficiaries, func(i, j int) bool { return beneficiaries[i].ID < beneficiaries[j].ID })
	return beneficiaries, nil
}

func (f *fakeBeneficiaryRepo) FindByID(id int) (*entity.Beneficiary, error) {
	return f.beneficiaries[id], nil
}

func (f *fakeBeneficiaryRepo) Save(beneficiary *entity.Beneficiary) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	if beneficiary.ID == 0 {
		beneficiary.ID = f.nextID
		f.nextID++
	}
	f.beneficiaries[beneficiary.ID] = beneficiary
	return nil
}

func (f *fakeBeneficiaryRepo) FindLinksByBrandID(brandID int) ([]*entity.BrandBeneficiary, error) {
	if f.findLinksErr != nil {
		return nil, f.findLinksErr
	}

	var links []*entity.BrandBeneficiary
	for _, link := range f.links {
		if link.BrandID == brandID {
			links = append(links, link)
		}
	}
	return links, nil
}

func (f *fakeBeneficiaryRepo) ExistsLinkByPair(brandID, beneficiaryID int) (bool, error) {
	for _, link := range f.links {
		if link.BrandID == brandID && link.BeneficiaryID == beneficiaryID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBeneficiaryRepo) SaveLink(link *entity.BrandBeneficiary) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	if link.ID == 0 {
		link.ID = len(f.links) + 1
	}
	f.links = append(f.links, link)
	return nil
}

// fakeRelationRepo keys outgoing edges by source beneficiary and can fail
// lookups for chosen nodes only.
type fakeRelationRepo struct {
	relations map[int][]*entity.BeneficiaryRelation
	failFor   map[int]error
}

func newFakeRelationRepo() *fakeRelationRepo {
	return &fakeRelationRepo{
		relations: map[int][]*entity.BeneficiaryRelation{},
		failFor:   map[int]error{},
	}
}

func (f *fakeRelationRepo) addEdge(source *entity.Beneficiary, target *entity.Beneficiary, description string) {
	f.relations[source.ID] = append(f.relations[source.ID], &entity.BeneficiaryRelation{
		ID:                  len(f.relations[source.ID]) + source.ID*100,
		SourceBeneficiaryID: source.ID,
		TargetBeneficiaryID: target.ID,
		Description:         description,
		Target:              target,
	})
}

func (f *fakeRelationRepo) FindBySourceID(beneficiaryID int) ([]*entity.BeneficiaryRelation, error) {
	if err, ok := f.failFor[beneficiaryID]; ok {
		return nil, err
	}
	return f.relations[beneficiaryID], nil
}

func (f *fakeRelationRepo) Save(relation *entity.BeneficiaryRelation) error {
	if relation.ID == 0 {
		relation.ID = len(f.relations[relation.SourceBeneficiaryID]) + 1
	}
	f.relations[relation.SourceBeneficiaryID] = append(f.relations[relation.SourceBeneficiaryID], relation)
	return nil
}

type fakeCategoryRepo struct {
	categories map[int]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: map[int]*entity.Category{}}
	for _, category := range categories {
		repo.categories[category.ID] = category
	}
	return repo
}

func (f *fakeCategoryRepo) FindAll() ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (f *fakeCategoryRepo) FindByID(id int) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) Save(category *entity.Category) error {
	if category.ID == 0 {
		category.ID = len(f.categories) + 1
	}
	f.categories[category.ID] = category
	return nil
}

type fakeControversyRepo struct {
	controversies []*entity.Controversy

	existsErr error
	saveErr   error
}

func (f *fakeControversyRepo) FindByBrandID(brandID int) ([]*entity.Controversy, error) {
	var controversies []*entity.Controversy
	for _, c := range f.controversies {
		if c.BrandID == brandID {
			controversies = append(controversies, c)
		}
	}
	return controversies, nil
}

func (f *fakeControversyRepo) ExistsByPropositionID(propositionID int64) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}

	for _, c := range f.controversies {
		if c.PropositionID != nil && *c.PropositionID == propositionID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeControversyRepo) Save(controversy *entity.Controversy) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	if controversy.ID == 0 {
		controversy.ID = len(f.controversies) + 1
	}
	f.controversies = append(f.controversies, controversy)
	return nil
}

type fakePropositionRepo struct {
	propositions map[int64]*entity.Proposition

	saveErr error
}

func newFakePropositionRepo(propositions ...*entity.Proposition) *fakePropositionRepo {
	repo := &fakePropositionRepo{propositions: map[int64]*entity.Proposition{}}
	for _, p := range propositions {
		repo.propositions[p.ID] = p
	}
	return repo
}

func (f *fakePropositionRepo) FindAll() ([]*entity.Proposition, error) {
	return f.sorted(func(*entity.Proposition) bool { return true }), nil
}

func (f *fakePropositionRepo) FindByStatus(status entity.PropositionStatus) ([]*entity.Proposition, error) {
	return f.sorted(func(p *entity.Proposition) bool { return p.Status == status }), nil
}

func (f *fakePropositionRepo) FindPublicDecisions() ([]*entity.Proposition, error) {
	return f.sorted(func(p *entity.Proposition) bool {
		return p.Status != entity.StatusPending && p.IsPublicDecision
	}), nil
}

func (f *fakePropositionRepo) FindByID(id int64) (*entity.Proposition, error) {
	return f.propositions[id], nil
}

func (f *fakePropositionRepo) Save(proposition *entity.Proposition) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.propositions[proposition.ID] = proposition
	return nil
}

func (f *fakePropositionRepo) sorted(keep func(*entity.Proposition) bool) []*entity.Proposition {
	var propositions []*entity.Proposition
	for _, p := range f.propositions {
		if keep(p) {
			propositions = append(propositions, p)
		}
	}
	sort.Slice(propositions, func(i, j int) bool {
		return propositions[i].CreatedAt > propositions[j].CreatedAt
	})
	return propositions
}

type fakeFeed struct {
	events []events.SocketEvent
}

func (f *fakeFeed) Broadcast(_ context.Context, event events.SocketEvent) {
	f.events = append(f.events, event)
}

type fakeLogoRepo struct {
	logos map[string]*entity.CachedLogo
}

func newFakeLogoRepo() *fakeLogoRepo {
	return &fakeLogoRepo{logos: map[string]*entity.CachedLogo{}}
}

func (f *fakeLogoRepo) FindByDomain(domain string) (*entity.CachedLogo, error) {
	return f.logos[domain], nil
}

func (f *fakeLogoRepo) Save(logo *entity.CachedLogo) error {
	f.logos[logo.Domain] = logo
	return nil
}

func (f *fakeLogoRepo) DeleteExpired(before int64) error {
	for domain, logo := range f.logos {
		if logo.CachedAt < before {
			delete(f.logos, domain)
		}
	}
	return nil
}

type fakeS3 struct {
	uploads map[string][]byte
	deleted []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{uploads: map[string][]byte{}}
}

func (f *fakeS3) UploadFile(data []byte, key string) (string, error) {
	f.uploads[key] = data
	return key, nil
}

func (f *fakeS3) DeleteFile(key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeS3) PublicURL(key string) string {
	return "https://bucket.s3.test.amazonaws.com/" + key
}

type fakeLookup struct {
	urls  map[string]string
	err   error
	calls int
}

func (f *fakeLookup) Resolve(_ context.Context, domain string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}

	url, ok := f.urls[domain]
	if !ok {
		return "", logodev.ErrNotFound
	}
	return url, nil
}
