package database

import (
	"database/sql"
	"fmt"
	"time"
)

// GetBotState retrieves the city cycle state. The row always exists; a
// NULL city means the cycle starts from the beginning.
func GetBotState() (*BotState, error) {
	db := GetDB()
	if db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	var city sql.NullString
	var reset sql.NullTime
	err := db.QueryRow(`SELECT last_posted_city, last_cycle_reset FROM bot_state WHERE id = 1`).Scan(&city, &reset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bot state: %w", err)
	}

	state := &BotState{}
	if city.Valid {
		state.LastPostedCity = city.String
	}
	if reset.Valid {
		state.LastCycleReset = reset.Time.UTC()
		state.HasReset = true
	}

	return state, nil
}

// SetBotState stores the last posted city and cycle reset stamp
func SetBotState(lastPostedCity string, lastCycleReset time.Time) error {
	db := GetDB()
	if db == nil {
		return fmt.Errorf("database not initialized")
	}

	_, err := db.Exec(
		`UPDATE bot_state SET last_posted_city = ?, last_cycle_reset = ? WHERE id = 1`,
		lastPostedCity, lastCycleReset.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update bot state: %w", err)
	}

	return nil
}

// ResetCycle clears the last posted city and stamps a new cycle start
func ResetCycle(resetTime time.Time) error {
	db := GetDB()
	if db == nil {
		return fmt.Errorf("database not initialized")
	}

	_, err := db.Exec(
		`UPDATE bot_state SET last_posted_city = NULL, last_cycle_reset = ? WHERE id = 1`,
		resetTime.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to reset cycle: %w", err)
	}

	return nil
}
