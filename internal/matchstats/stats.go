// Package matchstats tracks lightweight, in-memory battle statistics for
// callers embedding the battle core behind a service: per-player stat
// snapshots and the day's single largest attack. It has no bearing on
// battle outcomes; it exists purely as an observability side-channel,
// adapted from the teacher's own in-memory per-user stats cache.
package matchstats

import (
	"sync"
	"time"
)

var (
	statsMu   sync.Mutex
	userStats = make(map[string]map[string]interface{})
	// dailyMax keys by date string YYYY-MM-DD UTC.
	dailyMax = make(map[string]map[string]interface{})
)

func nowKey() string {
	return time.Now().UTC().Format("2006-01-02")
}

// SaveUserStats records the latest stats snapshot for a player ID.
func SaveUserStats(playerID string, s map[string]interface{}) {
	statsMu.Lock()
	defer statsMu.Unlock()
	userStats[playerID] = s
}

// GetUserStats returns the last recorded stats snapshot for a player ID.
func GetUserStats(playerID string) map[string]interface{} {
	statsMu.Lock()
	defer statsMu.Unlock()
	if s, ok := userStats[playerID]; ok {
		return s
	}
	return map[string]interface{}{}
}

// ResetDaily clears the in-memory global daily max map. Intended for
// tests and dev convenience.
func ResetDaily() {
	statsMu.Lock()
	defer statsMu.Unlock()
	for k := range dailyMax {
		delete(dailyMax, k)
	}
}

// SaveGlobalMaxAttack updates the per-day global max single-attack record
// if the provided attack dealt more damage than the current holder.
// Expected keys: player, pet, damage(int), wounds(int, pets knocked out).
func SaveGlobalMaxAttack(attack map[string]interface{}) {
	if attack == nil {
		return
	}
	dateKey := nowKey()
	getInt := func(m map[string]interface{}, key string) int {
		if vv, ok := m[key]; ok {
			switch t := vv.(type) {
			case float64:
				return int(t)
			case int:
				return t
			case int64:
				return int(t)
			}
		}
		return 0
	}
	statsMu.Lock()
	defer statsMu.Unlock()
	cur := dailyMax[dateKey]
	if cur == nil {
		dailyMax[dateKey] = attack
		return
	}
	cd, cw := getInt(cur, "damage"), getInt(cur, "wounds")
	nd, nw := getInt(attack, "damage"), getInt(attack, "wounds")
	if nd > cd || (nd == cd && nw > cw) {
		dailyMax[dateKey] = attack
	}
}

// GetGlobalMaxAttackToday returns today's largest recorded single attack,
// or an empty map if none has been recorded yet.
func GetGlobalMaxAttackToday() map[string]interface{} {
	dateKey := nowKey()
	statsMu.Lock()
	defer statsMu.Unlock()
	if m, ok := dailyMax[dateKey]; ok && m != nil {
		return m
	}
	return map[string]interface{}{}
}
