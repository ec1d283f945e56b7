package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/corecord/corecord-backend/internal/converter"
	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/model"
)

type AbilityService struct {
	abilities AbilityRepository
	users     UserRepository
}

func NewAbilityService(abilities AbilityRepository, users UserRepository) *AbilityService {
	return &AbilityService{
		abilities: abilities,
		users:     users,
	}
}

type parsedAbility struct {
	keyword model.Keyword
	content string
}

// ParseAndSaveAbilities resolves every keyword label, then saves one Ability
// per entry in Keyword registration order and appends it to
// analysis.Abilities. A single unknown label fails the call before anything
// is saved. When a save fails, analysis.Abilities is restored to its length
// on entry.
func (s *AbilityService) ParseAndSaveAbilities(
	ctx context.Context,
	keywordComments map[string]string,
	analysis *model.Analysis,
	user *model.User,
) error {
	parsed := make([]parsedAbility, 0, len(keywordComments))
	for label, content := range keywordComments {
		keyword, ok := model.KeywordFromLabel(label)
		if !ok {
			return errs.New(errs.AbilityInvalidKeyword)
		}
		parsed = append(parsed, parsedAbility{keyword: keyword, content: content})
	}

	slices.SortFunc(parsed, func(a, b parsedAbility) int {
		return cmp.Compare(a.keyword.Order(), b.keyword.Order())
	})

	kept := len(analysis.Abilities)
	for _, p := range parsed {
		ability := converter.ToAbility(p.keyword, p.content, analysis, user)
		if err := s.abilities.Save(ctx, &ability); err != nil {
			analysis.Abilities = analysis.Abilities[:kept]
			return fmt.Errorf("failed to save ability %s: %w", p.keyword, err)
		}
		analysis.Abilities = append(analysis.Abilities, ability)
	}

	return nil
}

// DeleteOriginAbilityList deletes every ability attached to the analysis and
// leaves analysis.Abilities empty.
func (s *AbilityService) DeleteOriginAbilityList(ctx context.Context, analysis *model.Analysis) error {
	for _, ability := range analysis.Abilities {
		if err := s.abilities.Delete(ctx, ability.ID); err != nil {
			return fmt.Errorf("failed to delete ability %d: %w", ability.ID, err)
		}
	}
	analysis.Abilities = []model.Ability{}
	return nil
}

// GetKeywordList returns the labels of the keywords the user holds at least
// one ability for, in repository order.
func (s *AbilityService) GetKeywordList(ctx context.Context, userID int64) (*dto.KeywordListResponse, error) {
	user, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	keywords, err := s.abilities.FindKeywordsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp := converter.ToKeywordListDto(keywords)
	return &resp, nil
}

func (s *AbilityService) GetKeywordGraph(ctx context.Context, userID int64) (*dto.KeywordGraphResponse, error) {
	user, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.abilities.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp := converter.ToKeywordGraphDto(counts)
	return &resp, nil
}
