// ABOUTME: Week plan and daily plan operations for Charm KV storage.
// ABOUTME: Week plans key on start date; daily plans on the (child, date) pair.
package charm

import (
	"fmt"

	"github.com/hearthlog/hearth/internal/models"
	"github.com/hearthlog/hearth/internal/storage"
)

// PutWeekPlan stores a week plan, overwriting any plan for the same start
// date.
func (c *Client) PutWeekPlan(w *models.WeekPlan) error {
	data, err := marshalJSON(w)
	if err != nil {
		return fmt.Errorf("marshal week plan: %w", err)
	}
	return c.set(WeekPlanPrefix+w.StartDate, data)
}

// WeekPlanFor retrieves the week plan whose date range covers the given
// date, or (nil, nil) if no plan covers it.
func (c *Client) WeekPlanFor(date string) (*models.WeekPlan, error) {
	allData, err := c.listByPrefix(WeekPlanPrefix)
	if err != nil {
		return nil, fmt.Errorf("week plan for %s: %w", date, err)
	}

	var best *models.WeekPlan
	for _, data := range allData {
		w, err := unmarshalJSON[models.WeekPlan](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if !w.Covers(date) {
			continue
		}
		if best == nil || w.StartDate > best.StartDate {
			best = w
		}
	}
	return best, nil
}

// PutDailyPlan stores a daily plan, replacing any existing plan for the
// (child, date) pair.
func (c *Client) PutDailyPlan(p *models.DailyPlan) error {
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal daily plan: %w", err)
	}
	return c.set(DailyPlanPrefix+storage.DailyPlanKey(p.ChildID, p.Date), data)
}

// GetDailyPlan retrieves the plan for a (child, date), or (nil, nil) if
// none has been generated.
func (c *Client) GetDailyPlan(childID, date string) (*models.DailyPlan, error) {
	data, err := c.get(DailyPlanPrefix + storage.DailyPlanKey(childID, date))
	if err != nil {
		return nil, fmt.Errorf("get daily plan: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return unmarshalJSON[models.DailyPlan](data)
}
