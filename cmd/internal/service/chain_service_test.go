package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBeneficiary(id int, name string) *entity.Beneficiary {
	return &entity.Beneficiary{ID: id, Name: name, Kind: entity.KindIndividual}
}

func linkToBrand(repo *fakeBeneficiaryRepo, brandID int, b *entity.Beneficiary) {
	repo.links = append(repo.links, &entity.BrandBeneficiary{
		ID:            len(repo.links) + 1,
		BrandID:       brandID,
		BeneficiaryID: b.ID,
		FinancialLink: "majority owner",
		Beneficiary:   b,
	})
}

func TestResolveChainBrandNotFound(t *testing.T) {
	svc := NewChainService(newFakeBrandRepo(), newFakeBeneficiaryRepo(), newFakeRelationRepo())

	chain, apierr := svc.ResolveChain(42, 0)
	require.Nil(t, chain)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestResolveChainBrandRepoFailure(t *testing.T) {
	brandRepo := newFakeBrandRepo()
	brandRepo.findByIDErr = errDatabaseDown
	svc := NewChainService(brandRepo, newFakeBeneficiaryRepo(), newFakeRelationRepo())

	chain, apierr := svc.ResolveChain(1, 0)
	require.Nil(t, chain)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusInternalServerError, apierr.Code())
}

func TestResolveChainEmpty(t *testing.T) {
	brand := &entity.Brand{ID: 1, Name: "Nexola"}
	svc := NewChainService(newFakeBrandRepo(brand), newFakeBeneficiaryRepo(), newFakeRelationRepo())

	chain, apierr := svc.ResolveChain(1, 0)
	require.Nil(t, apierr)
	assert.Equal(t, 1, chain.BrandID)
	assert.Equal(t, "Nexola", chain.BrandName)
	assert.Empty(t, chain.Chain)
	assert.Equal(t, 0, chain.MaxDepthReached)
}

func TestResolveChainLevelsAndOrdering(t *testing.T) {
	brand := &entity.Brand{ID: 1, Name: "Nexola"}
	zara := newBeneficiary(10, "Zara Holdings")
	avel := newBeneficiary(11, "Avel Group")
	meridian := newBeneficiary(12, "Meridian Fund")

	beneficiaryRepo := newFakeBeneficiaryRepo(zara, avel, meridian)
	linkToBrand(beneficiaryRepo, brand.ID, zara)
	linkToBrand(beneficiaryRepo, brand.ID, avel)

	relationRepo := newFakeRelationRepo()
	relationRepo.addEdge(zara, meridian, "dividends flow upward")

	svc := NewChainService(newFakeBrandRepo(brand), beneficiaryRepo, relationRepo)

	chain, apierr := svc.ResolveChain(1, 0)
	require.Nil(t, apierr)
	require.Len(t, chain.Chain, 3)

	// Level 0 sorted by name, deeper levels after
	assert.Equal(t, "Avel Group", chain.Chain[0].Beneficiary.Name)
	assert.Equal(t, 0, chain.Chain[0].Level)
	assert.Equal(t, "Zara Holdings", chain.Chain[1].Beneficiary.Name)
	assert.Equal(t, 0, chain.Chain[1].Level)
	assert.Equal(t, "Meridian Fund", chain.Chain[2].Beneficiary.Name)
	assert.Equal(t, 1, chain.Chain[2].Level)
	assert.Equal(t, 1, chain.MaxDepthReached)

	// The edge shows up on its source node
	require.Len(t, chain.Chain[1].OutgoingRelations, 1)
	assert.Equal(t, meridian.ID, chain.Chain[1].OutgoingRelations[0].TargetBeneficiaryID)
}

func TestResolveChainFrenchCollation(t *testing.T) {
	brand := &entity.Brand{ID: 1, Name: "Nexola"}
	etoile := newBeneficiary(10, "Étoile Capital")
	zenith := newBeneficiary(11, "Zénith Invest")
	amber := newBeneficiary(12, "ambre & fils")

	beneficiaryRepo := newFakeBeneficiaryRepo(etoile, zenith, amber)
	linkToBrand(beneficiaryRepo, brand.ID, etoile)
	linkToBrand(beneficiaryRepo, brand.ID, zenith)
	linkToBrand(beneficiaryRepo, brand.ID, amber)

	svc := NewChainService(newFakeBrandRepo(brand), beneficiaryRepo, newFakeRelationRepo())

	chain, apierr := svc.ResolveChain(1, 0)
	require.Nil(t, apierr)
	require.Len(t, chain.Chain, 3)

	// Accented characters sort with their base letter, case ignored
	assert.Equal(t, "ambre & fils", chain.Chain[0].Beneficiary.Name)
	assert.Equal(t, "Étoile Capital", chain.Chain[1].Beneficiary.Name)
	assert.Equal(t, "Zénith Invest", chain.Chain[2].Beneficiary.Name)
}

func TestResolveChainCycleTerminates(t *testing.T) {
	brand := &entity.Brand{ID: 1, Name: "Nexola"}
	a := newBeneficiary(10, "Alpha")
	b := newBeneficiary(11, "Beta")

	beneficiaryRepo := newFakeBeneficiaryRepo(a, b)
	linkToBrand(beneficiaryRepo, brand.ID, a)

	relationRepo := newFakeRelationRepo()
	relationRepo.addEdge(a, b, "owns")
	relationRepo.addEdge(b, a, "owns back")

	svc := NewChainService(newFakeBrandRepo(brand), beneficiaryRepo, relationRepo)

	chain, apierr := svc.ResolveChain(1, 0)
	require.Nil(t, apierr)
	require.Len(t, chain.Chain, 2)
	assert.Equal(t, "Alpha", chain.Chain[0].Beneficiary.Name)
	assert.Equal(t, "Beta", chain.Chain[1].Beneficiary.Name)
	assert.Equal(t, 1, chain.MaxDepthReached)
}

func TestResolveChainDepthCutoff(t *testing.T) {
	brand := &entity.Brand{ID: 1, Name: "Nexola"}
	a := newBeneficiary(10, "Alpha")
	b := newBeneficiary(11, "Beta")
	c := newBeneficiary(12, "Gamma")

	beneficiaryRepo := newFakeBeneficiaryRepo(a, b, c)
	linkToBrand(beneficiaryRepo, brand.ID, a)

	relationRepo := newFakeRelationRepo()
	relationRepo.addEdge(a, b, "owns")
	relationRepo.addEdge(b, c, "owns")

	svc := NewChainService(newFakeBrandRepo(brand), beneficiaryRepo, relationRepo)

	chain, apierr := svc.ResolveChain(1, 2)
	require.Nil(t, apierr)
	require.Len(t, chain.Chain, 2)
	assert.Equal(t, "Alpha", chain.Chain[0].Beneficiary.Name)
	assert.Equal(t, "Beta", chain.Chain[1].Beneficiary.Name)
	assert.Equal(t, 1, chain.MaxDepthReached)
}

func TestResolveChainDedupeAcrossBranches(t *testing.T) {
	brand := &entity.Brand{ID: 1, Name: "Nexola"}
	a := newBeneficiary(10, "Alpha")
	b := newBeneficiary(11, "Beta")
	shared := newBeneficiary(12, "Shared Fund")

	beneficiaryRepo := newFakeBeneficiaryRepo(a, b, shared)
	linkToBrand(beneficiaryRepo, brand.ID, a)
	linkToBrand(beneficiaryRepo, brand.ID, b)

	relationRepo := newFakeRelationRepo()
	relationRepo.addEdge(a, shared, "via alpha")
	relationRepo.addEdge(b, shared, "via beta")

	svc := NewChainService(newFakeBrandRepo(brand), beneficiaryRepo, relationRepo)

	chain, apierr := svc.ResolveChain(1, 0)
	require.Nil(t, apierr)
	require.Len(t, chain.Chain, 3)

	occurrences := 0
	for _, node := range chain.Chain {
		if node.Beneficiary.ID == shared.ID {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
}

func TestResolveChainNodeFailurePrunesBranchOnly(t *testing.T) {
	brand := &entity.Brand{ID: 1, Name: "Nexola"}
	broken := newBeneficiary(10, "Broken Node")
	healthy := newBeneficiary(11, "Healthy Node")
	child := newBeneficiary(12, "Child Fund")

	beneficiaryRepo := newFakeBeneficiaryRepo(broken, healthy, child)
	linkToBrand(beneficiaryRepo, brand.ID, broken)
	linkToBrand(beneficiaryRepo, brand.ID, healthy)

	relationRepo := newFakeRelationRepo()
	relationRepo.addEdge(healthy, child, "owns")
	relationRepo.failFor[broken.ID] = errDatabaseDown

	svc := NewChainService(newFakeBrandRepo(brand), beneficiaryRepo, relationRepo)

	chain, apierr := svc.ResolveChain(1, 0)
	require.Nil(t, apierr)
	require.Len(t, chain.Chain, 3)

	var brokenNode *contract.ChainNode
	for _, node := range chain.Chain {
		if node.Beneficiary.ID == broken.ID {
			brokenNode = node
		}
	}

	// The failing node is still emitted, just without expansion
	require.NotNil(t, brokenNode)
	assert.Empty(t, brokenNode.OutgoingRelations)
}

func TestResolveChainLinksFetchFailureIsFatal(t *testing.T) {
	brand := &entity.Brand{ID: 1, Name: "Nexola"}
	beneficiaryRepo := newFakeBeneficiaryRepo()
	beneficiaryRepo.findLinksErr = errDatabaseDown

	svc := NewChainService(newFakeBrandRepo(brand), beneficiaryRepo, newFakeRelationRepo())

	chain, apierr := svc.ResolveChain(1, 0)
	require.Nil(t, chain)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusInternalServerError, apierr.Code())
}
