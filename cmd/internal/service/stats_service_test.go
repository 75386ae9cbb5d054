package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChain struct {
	chains map[int]*contract.ChainResponse
	err    apierror.ErrorResponse
}

func (s *stubChain) ResolveChain(brandID, _ int) (*contract.ChainResponse, apierror.ErrorResponse) {
	if s.err != nil {
		return nil, s.err
	}

	chain, ok := s.chains[brandID]
	if !ok {
		return &contract.ChainResponse{BrandID: brandID, Chain: []*contract.ChainNode{}}, nil
	}
	return chain, nil
}

func chainWith(nodes ...*contract.ChainNode) *contract.ChainResponse {
	return &contract.ChainResponse{Chain: nodes}
}

func nodeWithControversies(id, count int) *contract.ChainNode {
	controversies := make([]*contract.BeneficiaryControversyResponse, count)
	for i := range controversies {
		controversies[i] = &contract.BeneficiaryControversyResponse{ID: i + 1}
	}
	return &contract.ChainNode{
		Beneficiary: &contract.BeneficiaryResponse{ID: id, Controversies: controversies},
	}
}

func TestGetBrandStatsAggregates(t *testing.T) {
	environment := &entity.Category{ID: 1, Name: "Environnement"}
	labor := &entity.Category{ID: 2, Name: "Droits du travail"}

	brand := &entity.Brand{
		ID:   1,
		Name: "Nexola",
		Controversies: []*entity.Controversy{
			{ID: 1, CategoryID: 1, Category: environment},
			{ID: 2, CategoryID: 1, Category: environment},
			{ID: 3, CategoryID: 2, Category: labor, JudicialConviction: true},
			{ID: 4, CategoryID: 2, Category: labor},
		},
	}

	chain := &stubChain{chains: map[int]*contract.ChainResponse{
		1: chainWith(nodeWithControversies(10, 2), nodeWithControversies(11, 0), nodeWithControversies(12, 1)),
	}}

	svc := NewStatsService(newFakeBrandRepo(brand), chain)

	stats, apierr := svc.GetBrandStats()
	require.Nil(t, apierr)
	require.Len(t, stats, 1)

	stat := stats[0]
	assert.Equal(t, 4, stat.ControversyCount)
	assert.Equal(t, 1, stat.ConvictionCount)
	assert.Equal(t, 2, stat.ControversialBeneficiaryCount)

	// Categories deduped and collated
	require.Len(t, stat.Categories, 2)
	assert.Equal(t, "Droits du travail", stat.Categories[0].Name)
	assert.Equal(t, "Environnement", stat.Categories[1].Name)
}

func TestGetBrandStatsOrdering(t *testing.T) {
	noisy := &entity.Brand{ID: 1, Name: "Zeta Corp", Controversies: []*entity.Controversy{{ID: 1}, {ID: 2}}}
	quietA := &entity.Brand{ID: 2, Name: "Ambre SA", Controversies: []*entity.Controversy{{ID: 3}}}
	quietE := &entity.Brand{ID: 3, Name: "Éole SARL", Controversies: []*entity.Controversy{{ID: 4}}}

	svc := NewStatsService(newFakeBrandRepo(noisy, quietA, quietE), &stubChain{})

	stats, apierr := svc.GetBrandStats()
	require.Nil(t, apierr)
	require.Len(t, stats, 3)

	// Most controversial first, ties broken by collated name
	assert.Equal(t, "Zeta Corp", stats[0].Name)
	assert.Equal(t, "Ambre SA", stats[1].Name)
	assert.Equal(t, "Éole SARL", stats[2].Name)
}

func TestGetBrandStatsChainFailureDegradesToZero(t *testing.T) {
	brand := &entity.Brand{ID: 1, Name: "Nexola", Controversies: []*entity.Controversy{{ID: 1, JudicialConviction: true}}}
	chain := &stubChain{err: apierror.InternalServerError}

	svc := NewStatsService(newFakeBrandRepo(brand), chain)

	stats, apierr := svc.GetBrandStats()
	require.Nil(t, apierr)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].ControversyCount)
	assert.Equal(t, 0, stats[0].ControversialBeneficiaryCount)
}

func TestGetBrandStatsRepoFailure(t *testing.T) {
	brandRepo := newFakeBrandRepo()
	brandRepo.findAllErr = errDatabaseDown

	svc := NewStatsService(brandRepo, &stubChain{})

	stats, apierr := svc.GetBrandStats()
	require.Nil(t, stats)
	require.NotNil(t, apierr)
	assert.Equal(t, 500, apierr.Code())
}
