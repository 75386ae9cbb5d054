package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/utils/apierror"
	"sort"

	"github.com/labstack/gommon/log"
)

type ChainResolver interface {
	ResolveChain(brandID, depth int) (*contract.ChainResponse, apierror.ErrorResponse)
}

type DefaultStatsService struct {
	BrandRepo BrandRepository
	Chain     ChainResolver
}

func NewStatsService(brandRepo BrandRepository, chain ChainResolver) *DefaultStatsService {
	return &DefaultStatsService{
		BrandRepo: brandRepo,
		Chain:     chain,
	}
}

// GetBrandStats summarizes every brand for the comparison page: controversy
// count, the distinct categories touched, conviction count, and how many
// beneficiaries in the brand's chain carry controversies of their own.
func (s *DefaultStatsService) GetBrandStats() ([]*contract.BrandStatsResponse, apierror.ErrorResponse) {
	brands, err := s.BrandRepo.FindAll()
	if err != nil {
		log.Errorf("stats: failed to fetch brands: %v", err)
		return nil, apierror.InternalServerError
	}

	stats := make([]*contract.BrandStatsResponse, len(brands))
	for i, brand := range brands {
		stat := &contract.BrandStatsResponse{
			ID:               brand.ID,
			Name:             brand.Name,
			ControversyCount: len(brand.Controversies),
			Categories:       []*contract.CategoryResponse{},
		}

		seen := map[int]struct{}{}
		for _, controversy := range brand.Controversies {
			if controversy.JudicialConviction {
				stat.ConvictionCount++
			}

			if controversy.Category == nil {
				continue
			}
			if _, dup := seen[controversy.Category.ID]; dup {
				continue
			}
			seen[controversy.Category.ID] = struct{}{}
			stat.Categories = append(stat.Categories, toCategoryResponse(controversy.Category))
		}

		sort.SliceStable(stat.Categories, func(a, b int) bool {
			return nameCollator.CompareString(stat.Categories[a].Name, stat.Categories[b].Name) < 0
		})

		stat.ControversialBeneficiaryCount = s.countControversialBeneficiaries(brand.ID)
		stats[i] = stat
	}

	sort.SliceStable(stats, func(a, b int) bool {
		if stats[a].ControversyCount != stats[b].ControversyCount {
			return stats[a].ControversyCount > stats[b].ControversyCount
		}
		return nameCollator.CompareString(stats[a].Name, stats[b].Name) < 0
	})
	return stats, nil
}

// countControversialBeneficiaries walks the brand's beneficiary chain and
// counts the members with at least one controversy record. A failed chain
// resolution degrades the figure to zero instead of failing the whole page.
func (s *DefaultStatsService) countControversialBeneficiaries(brandID int) int {
	chain, apierr := s.Chain.ResolveChain(brandID, DefaultChainDepth)
	if apierr != nil {
		log.Warnf("stats: chain resolution failed for brand %d, reporting 0 beneficiaries", brandID)
		return 0
	}

	count := 0
	for _, node := range chain.Chain {
		if len(node.Beneficiary.Controversies) > 0 {
			count++
		}
	}
	return count
}
