package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/utils/apierror"
	"sort"

	"github.com/labstack/gommon/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	// DefaultChainDepth is how far the resolver follows "profits further"
	// relations when the caller does not ask for a specific depth.
	DefaultChainDepth = 5
	MaxChainDepth     = 10
)

// nameCollator orders beneficiary and brand names the way a French-speaking
// reader expects (the directory's content is French).
var nameCollator = collate.New(language.French, collate.IgnoreCase)

type RelationRepository interface {
	FindBySourceID(beneficiaryID int) ([]*entity.BeneficiaryRelation, error)
	Save(relation *entity.BeneficiaryRelation) error
}

type DefaultChainService struct {
	BrandRepo       BrandRepository
	BeneficiaryRepo BeneficiaryRepository
	RelationRepo    RelationRepository
}

func NewChainService(
	brandRepo BrandRepository,
	beneficiaryRepo BeneficiaryRepository,
	relationRepo RelationRepository,
) *DefaultChainService {
	return &DefaultChainService{
		BrandRepo:       brandRepo,
		BeneficiaryRepo: beneficiaryRepo,
		RelationRepo:    relationRepo,
	}
}

// ResolveChain builds the leveled, deduplicated beneficiary chain of a brand.
//
// The brand's directly linked beneficiaries seed the walk at level 0; each
// branch then follows outgoing relations depth-first up to the depth cutoff.
// Nodes past the cutoff are silently omitted, never an error.
func (s *DefaultChainService) ResolveChain(brandID, depth int) (*contract.ChainResponse, apierror.ErrorResponse) {
	if depth <= 0 {
		depth = DefaultChainDepth
	}
	if depth > MaxChainDepth {
		depth = MaxChainDepth
	}

	brand, err := s.BrandRepo.FindByID(brandID)
	if err != nil {
		log.Errorf("chain: failed to fetch brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}

	if brand == nil {
		return nil, apierror.NotFoundError
	}

	links, err := s.BeneficiaryRepo.FindLinksByBrandID(brandID)
	if err != nil {
		log.Errorf("chain: failed to fetch links of brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}

	var nodes []*contract.ChainNode
	for _, link := range links {
		if link.Beneficiary == nil {
			continue
		}
		nodes = append(nodes, s.expand(link.Beneficiary, 0, depth, map[int]struct{}{})...)
	}

	chain := mergeChain(nodes)
	sortChain(chain)

	maxDepth := 0
	for _, node := range chain {
		if node.Level > maxDepth {
			maxDepth = node.Level
		}
	}

	return &contract.ChainResponse{
		BrandID:         brand.ID,
		BrandName:       brand.Name,
		Chain:           chain,
		MaxDepthReached: maxDepth,
	}, nil
}

// expand walks one branch depth-first. The visited set is copied per branch:
// sibling branches may legitimately revisit a node that only THIS branch has
// seen, so they must not share mutable state.
func (s *DefaultChainService) expand(b *entity.Beneficiary, level, depth int, visited map[int]struct{}) []*contract.ChainNode {
	if level >= depth {
		return nil
	}

	if _, seen := visited[b.ID]; seen {
		return nil
	}

	branch := make(map[int]struct{}, len(visited)+1)
	for id := range visited {
		branch[id] = struct{}{}
	}
	branch[b.ID] = struct{}{}

	relations, err := s.RelationRepo.FindBySourceID(b.ID)
	if err != nil {
		// A failed node fetch prunes this branch only; partial chains beat
		// failing the whole resolution.
		log.Warnf("chain: failed to fetch relations of beneficiary %d: %v", b.ID, err)
		relations = nil
	}

	nodes := []*contract.ChainNode{{
		Beneficiary:       toBeneficiaryResponse(b),
		Level:             level,
		OutgoingRelations: toRelationResponses(relations),
	}}

	for _, relation := range relations {
		if relation.Target == nil {
			continue
		}
		nodes = append(nodes, s.expand(relation.Target, level+1, depth, branch)...)
	}
	return nodes
}

// mergeChain collapses nodes that multiple branches reached down to one entry
// per beneficiary id, keeping the first occurrence.
func mergeChain(nodes []*contract.ChainNode) []*contract.ChainNode {
	merged := make([]*contract.ChainNode, 0, len(nodes))
	seen := make(map[int]struct{}, len(nodes))

	for _, node := range nodes {
		if _, dup := seen[node.Beneficiary.ID]; dup {
			continue
		}
		seen[node.Beneficiary.ID] = struct{}{}
		merged = append(merged, node)
	}
	return merged
}

func sortChain(chain []*contract.ChainNode) {
	sort.SliceStable(chain, func(i, j int) bool {
		if chain[i].Level != chain[j].Level {
			return chain[i].Level < chain[j].Level
		}
		return nameCollator.CompareString(chain[i].Beneficiary.Name, chain[j].Beneficiary.Name) < 0
	})
}
