package data

// skillDefs — базовый каталог скиллов. Рукописный аналог выгрузки gendata:
// плоские литералы, порядок объявления = порядок показа в UI.
var skillDefs = []skillDef{
	{
		name:            "Fists of Thunder",
		kind:            "projectile",
		damage:          14,
		manaCost:        0,
		cooldownSeconds: 0,
		castRange:       9,
		presentationRef: "fists-of-thunder",
		castCue:         "fot_cast",
		impactCue:       "fot_hit",
		effects:         []string{"lightning damage", "teleport to target on third hit"},
		isPrimaryAttack: true,
	},
	{
		name:            "Cyclone Strike",
		kind:            "aoe",
		manaCost:        30,
		cooldownSeconds: 9,
		radius:          8,
		damageCoef:      4.5, // damage scales with pull radius
		presentationRef: "cyclone-strike",
		castCue:         "cyclone_cast",
		impactCue:       "cyclone_pull",
		effects:         []string{"pull enemies to center", "area damage"},
	},
	{
		name:            "Seven-Sided Strike",
		kind:            "multi",
		damage:          120,
		manaCost:        50,
		cooldownSeconds: 21,
		castRange:       12,
		presentationRef: "seven-sided-strike",
		castCue:         "sss_cast",
		impactCue:       "sss_hit",
		endCue:          "sss_end",
		effects:         []string{"seven rapid strikes", "untargetable while striking"},
	},
	{
		name:            "Exploding Palm",
		kind:            "mark",
		damage:          22,
		manaCost:        25,
		cooldownSeconds: 12,
		castRange:       7,
		durationSeconds: 7,
		presentationRef: "exploding-palm",
		castCue:         "palm_cast",
		impactCue:       "palm_burst",
		effects:         []string{"mark target for death", "explosion on death"},
	},
	{
		name:            "Flying Kick",
		kind:            "dash",
		damage:          35,
		manaCost:        20,
		cooldownSeconds: 6,
		castRange:       14,
		presentationRef: "flying-kick",
		castCue:         "kick_cast",
		impactCue:       "kick_hit",
		effects:         []string{"dash through enemies"},
		piercing:        true,
	},
	{
		name:            "Wave of Light",
		kind:            "wave",
		damage:          95,
		manaCost:        45,
		cooldownSeconds: 12,
		castRange:       11,
		radius:          4,
		presentationRef: "wave-of-light",
		castCue:         "bell_cast",
		impactCue:       "bell_hit",
		effects:         []string{"drop a bell on enemies", "wave damage in a line"},
	},
	{
		name:            "Inner Sanctuary",
		kind:            "buff",
		manaCost:        30,
		cooldownSeconds: 20,
		radius:          5,
		durationCoef:    1.2, // bigger circle holds longer
		presentationRef: "inner-sanctuary",
		castCue:         "sanctuary_cast",
		endCue:          "sanctuary_end",
		effects:         []string{"protective circle", "allies inside take reduced damage"},
	},
	{
		name:            "Mystic Allies",
		kind:            "summon",
		damage:          10,
		manaCost:        40,
		cooldownSeconds: 30,
		durationSeconds: 20,
		presentationRef: "mystic-allies",
		castCue:         "allies_cast",
		endCue:          "allies_end",
		effects:         []string{"summon two spirit allies"},
	},
	{
		name:            "Shield of Zen",
		kind:            "buff",
		manaCost:        35,
		cooldownSeconds: 16,
		castRange:       10,
		durationSeconds: 8,
		presentationRef: "shield-of-zen",
		castCue:         "zen_cast",
		endCue:          "zen_end",
		effects:         []string{"absorb shield on ally", "golden guardian visual"},
	},
	{
		name:            "Tempest Rush",
		kind:            "control",
		damage:          18,
		manaCost:        15,
		cooldownSeconds: 4,
		castRange:       10,
		presentationRef: "tempest-rush",
		castCue:         "rush_cast",
		impactCue:       "rush_hit",
		effects:         []string{"channelled forward rush", "knock enemies aside"},
		isCustomSkill:   true,
	},
}
