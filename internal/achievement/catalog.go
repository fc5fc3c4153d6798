package achievement

// DefaultCatalog is the fixed rule set seeded once into an empty achievements
// table. Gameplay never mutates it.
var DefaultCatalog = []Achievement{
	{
		ID:               "first_blood",
		Name:             "First Blood",
		Description:      "Destroy your first enemy",
		Icon:             "🎯",
		Category:         "combat",
		RequirementType:  ReqEnemiesDestroyed,
		RequirementValue: 1,
		Points:           10,
	},
	{
		ID:               "asteroid_crusher",
		Name:             "Asteroid Crusher",
		Description:      "Destroy 50 asteroids",
		Icon:             "☄️",
		Category:         "combat",
		RequirementType:  ReqAsteroidsDestroyed,
		RequirementValue: 50,
		Points:           25,
	},
	{
		ID:               "survivor",
		Name:             "Survivor",
		Description:      "Survive for 2 minutes",
		Icon:             "⏱️",
		Category:         "survival",
		RequirementType:  ReqGameDuration,
		RequirementValue: 120,
		Points:           20,
	},
	{
		ID:               "power_collector",
		Name:             "Power Collector",
		Description:      "Collect 20 power-ups",
		Icon:             "⚡",
		Category:         "collection",
		RequirementType:  ReqPowerupsCollected,
		RequirementValue: 20,
		Points:           15,
	},
	{
		ID:               "score_master",
		Name:             "Score Master",
		Description:      "Reach 10,000 points",
		Icon:             "🏆",
		Category:         "score",
		RequirementType:  ReqScore,
		RequirementValue: 10000,
		Points:           50,
	},
	{
		ID:               "legendary",
		Name:             "Legendary",
		Description:      "Reach 25,000 points",
		Icon:             "👑",
		Category:         "score",
		RequirementType:  ReqScore,
		RequirementValue: 25000,
		Points:           100,
	},
	{
		ID:               "wave_warrior",
		Name:             "Wave Warrior",
		Description:      "Reach Wave 10",
		Icon:             "🌊",
		Category:         "survival",
		RequirementType:  ReqWave,
		RequirementValue: 10,
		Points:           40,
	},
	{
		ID:               "speed_demon",
		Name:             "Speed Demon",
		Description:      "Reach 5,000 points in under 3 minutes",
		Icon:             "⚡",
		Category:         "score",
		RequirementType:  ReqScoreTime,
		RequirementValue: 5000,
		Points:           60,
		IsHidden:         true,
	},
	{
		ID:               "untouchable",
		Name:             "Untouchable",
		Description:      "Complete a game without taking damage",
		Icon:             "🛡️",
		Category:         "survival",
		RequirementType:  ReqNoDamage,
		RequirementValue: 1,
		Points:           75,
		IsHidden:         true,
	},
	{
		ID:               "destroyer",
		Name:             "Destroyer",
		Description:      "Destroy 100 enemies",
		Icon:             "💥",
		Category:         "combat",
		RequirementType:  ReqEnemiesDestroyed,
		RequirementValue: 100,
		Points:           50,
	},
}
