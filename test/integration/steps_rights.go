package integration

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

func (s *StepsContext) registerRightsSteps(sc *godog.ScenarioContext) {
	sc.Step(`^artwork "([^"]*)" should have (\d+) rights holders? costing (\d+(?:\.\d+)?)$`, s.artworkShouldHaveRightsHolders)
	sc.Step(`^rights holder "([^"]*)" should hold media "([^"]*)"$`, s.rightsHolderShouldHoldMedia)
	sc.Step(`^rights holder "([^"]*)" should hold no media$`, s.rightsHolderShouldHoldNoMedia)
	sc.Step(`^rights holder "([^"]*)" should not exist$`, s.rightsHolderShouldNotExist)
	sc.Step(`^the "([^"]*)" table should have (\d+) rows?$`, s.theTableShouldHaveRows)
}

func (s *StepsContext) artworkShouldHaveRightsHolders(ctx context.Context, artworkID string, count int, cost float64) error {
	holders, err := s.tc.Stores.RightsHolders.ListWhere(ctx, store.Criteria{"artwork_id": artworkID})
	if err != nil {
		return err
	}
	var total float64
	for _, h := range holders {
		total += h.Price
	}
	if len(holders) != count || total != cost {
		return fmt.Errorf("expected %d holders costing %v on %s, got %d costing %v", count, cost, artworkID, len(holders), total)
	}
	return nil
}

func (s *StepsContext) heldMedia(ctx context.Context, holderID string) ([]string, error) {
	rows, err := s.tc.Stores.RightsMedia.ListWhere(ctx, store.Criteria{"artwork_rights_holder_id": s.expand(holderID)})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.MediaID)
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *StepsContext) rightsHolderShouldHoldMedia(ctx context.Context, holderID, media string) error {
	want := strings.Split(media, ",")
	for i := range want {
		want[i] = strings.TrimSpace(want[i])
	}
	slices.Sort(want)

	got, err := s.heldMedia(ctx, holderID)
	if err != nil {
		return err
	}
	if !slices.Equal(got, want) {
		return fmt.Errorf("expected %s to hold %v, got %v", holderID, want, got)
	}
	return nil
}

func (s *StepsContext) rightsHolderShouldHoldNoMedia(ctx context.Context, holderID string) error {
	got, err := s.heldMedia(ctx, holderID)
	if err != nil {
		return err
	}
	if len(got) > 0 {
		return fmt.Errorf("expected %s to hold no media, got %v", holderID, got)
	}
	return nil
}

func (s *StepsContext) rightsHolderShouldNotExist(ctx context.Context, holderID string) error {
	h, err := s.tc.Stores.RightsHolders.Get(ctx, s.expand(holderID))
	if err != nil {
		return err
	}
	if h != nil {
		return fmt.Errorf("rights holder %s still exists", holderID)
	}
	return nil
}

func (s *StepsContext) theTableShouldHaveRows(table string, count int) error {
	var n int64
	if err := s.tc.DB.Table(table).Count(&n).Error; err != nil {
		return err
	}
	if int(n) != count {
		return fmt.Errorf("expected %d rows in %s, got %d", count, table, n)
	}
	return nil
}
