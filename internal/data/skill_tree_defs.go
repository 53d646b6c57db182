package data

// skillTreeDefs — каталог деревьев: варианты и баффы по скиллам.
// costPoints == 0 означает дефолт 5, maxLevel == 0 — дефолт 1 (см. лоадер).
var skillTreeDefs = []skillTreeDef{
	{
		skillName: "Fists of Thunder",
		variants: []variantDef{
			{
				name:        "Thunderclap",
				description: "Teleport to the target with every strike, releasing a shock nova on arrival.",
				effects:     []string{"teleport on every hit", "shock nova damage"},
			},
			{
				name:              "Quickening",
				description:       "Strikes no longer teleport but build combo charges that reduce all cooldowns.",
				effects:           []string{"combo charges", "cooldown reduction on hit"},
				unlockRequirement: "unlocked by legendary item Crackling Gauntlets",
			},
		},
		buffs: []buffDef{
			{
				name:            "Static Charge",
				description:     "Strikes charge enemies, arcing lightning to others nearby.",
				effects:         []string{"chain lightning damage"},
				maxLevel:        3,
				levelBonuses:    []string{"+5% arc damage", "+10% arc damage", "+15% arc damage"},
				requiredVariant: VariantAny,
			},
			{
				name:            "Rolling Thunder",
				description:     "Shock novas grow wider with each consecutive teleport.",
				effects:         []string{"nova radius increase"},
				maxLevel:        1,
				levelBonuses:    []string{"+30% nova radius"},
				requiredVariant: "Thunderclap",
			},
		},
	},
	{
		skillName: "Cyclone Strike",
		variants: []variantDef{
			{
				name:        "Eye of the Storm",
				description: "The vortex tightens, pulling from farther away and shielding you as it closes.",
				effects:     []string{"increased pull range", "absorb shield after pull"},
			},
			{
				name:                  "Vortex",
				description:           "The cyclone lingers, dragging enemies toward you for several seconds.",
				effects:               []string{"persistent pull area", "slow enemies inside"},
				requiredPointsInSkill: 10,
			},
		},
		buffs: []buffDef{
			{
				name:            "Eye of the Storm",
				description:     "The storm strikes harder at its center.",
				effects:         []string{"center damage increase"},
				maxLevel:        3,
				levelBonuses:    []string{"+10% center damage", "+20% center damage", "+30% center damage"},
				requiredVariant: VariantAny,
			},
			{
				name:            "Implosion",
				description:     "Enemies pulled by the vortex detonate for area damage when it ends.",
				effects:         []string{"detonation on vortex end"},
				maxLevel:        2,
				levelBonuses:    []string{"+15% detonation damage", "+30% detonation damage"},
				requiredVariant: "Vortex",
			},
			{
				name:            "Stormheart",
				description:     "The closing shield also heals you.",
				effects:         []string{"heal on shield gain"},
				maxLevel:        1,
				levelBonuses:    []string{"heal 6% max life"},
				requiredVariant: "Eye of the Storm",
			},
		},
	},
	{
		skillName: "Seven-Sided Strike",
		variants: []variantDef{
			{
				name:        "Sustained Assault",
				description: "Strike fourteen times at reduced damage per hit.",
				effects:     []string{"double strike count", "reduced per-hit damage"},
			},
			{
				name:              "Pandemonium",
				description:       "Each strike stuns its target briefly.",
				effects:           []string{"stun on every strike"},
				unlockRequirement: "unlocked by legendary item Breath of Incense",
			},
		},
		buffs: []buffDef{
			{
				name:            "Relentless",
				description:     "The cooldown shortens for every enemy struck.",
				effects:         []string{"cooldown reduction per hit"},
				maxLevel:        3,
				levelBonuses:    []string{"-0.3s per hit", "-0.5s per hit", "-0.7s per hit"},
				requiredVariant: VariantAny,
			},
		},
	},
	{
		skillName: "Exploding Palm",
		variants: []variantDef{
			{
				name:        "Impending Doom",
				description: "The mark detonates on expiry instead of on death, for far greater damage.",
				effects:     []string{"detonate on expiry", "increased explosion damage"},
			},
		},
		buffs: []buffDef{
			{
				name:            "Contagion",
				description:     "The explosion spreads the mark to nearby enemies.",
				effects:         []string{"mark spreads on explosion"},
				maxLevel:        2,
				levelBonuses:    []string{"spread to 1 enemy", "spread to 3 enemies"},
				requiredVariant: VariantAny,
			},
			{
				name:            "Grim Harvest",
				description:     "Expiry detonations refund mana.",
				effects:         []string{"mana refund on detonation"},
				maxLevel:        1,
				levelBonuses:    []string{"refund 10 mana"},
				requiredVariant: "Impending Doom",
			},
		},
	},
	{
		skillName: "Flying Kick",
		variants: []variantDef{
			{
				name:        "Mantle of the Crane",
				description: "The kick carries you farther and leaves a trail of wind that slows enemies.",
				effects:     []string{"increased dash range", "slowing wind trail"},
			},
			{
				name:                  "Spinning Kick",
				description:           "Kick in place, striking all enemies around you.",
				effects:               []string{"spin attack around self"},
				requiredPointsInSkill: 5,
			},
		},
		buffs: []buffDef{
			{
				name:            "Momentum",
				description:     "Each enemy passed through speeds you up briefly.",
				effects:         []string{"movement speed on pierce"},
				maxLevel:        3,
				levelBonuses:    []string{"+4% speed", "+8% speed", "+12% speed"},
				requiredVariant: VariantAny,
			},
		},
	},
	{
		skillName: "Wave of Light",
		variants: []variantDef{
			{
				name:        "Empowered Wave",
				description: "The bell rings three times, each wave wider than the last.",
				effects:     []string{"triple wave", "widening arc"},
			},
		},
		buffs: []buffDef{
			{
				name:            "Resonance",
				description:     "Enemies caught by more than one wave take bonus damage.",
				effects:         []string{"bonus damage on overlap"},
				maxLevel:        2,
				levelBonuses:    []string{"+10% overlap damage", "+20% overlap damage"},
				requiredVariant: "Empowered Wave",
			},
			{
				name:            "Tolling Bell",
				description:     "The bell's impact radius is increased.",
				effects:         []string{"impact radius increase"},
				maxLevel:        1,
				levelBonuses:    []string{"+25% impact radius"},
				requiredVariant: VariantAny,
			},
		},
	},
	{
		skillName: "Inner Sanctuary",
		variants: []variantDef{
			{
				name:        "Sanctified Ground",
				description: "The circle also heals allies standing inside.",
				effects:     []string{"healing over time inside circle"},
			},
			{
				name:        "Forbidden Palace",
				description: "Enemies inside the circle are slowed and take increased damage.",
				effects:     []string{"slow enemies inside", "enemies take increased damage"},
			},
		},
		buffs: []buffDef{
			{
				name:            "Safe Haven",
				description:     "The circle lasts longer.",
				effects:         []string{"duration increase"},
				maxLevel:        3,
				levelBonuses:    []string{"+1s duration", "+2s duration", "+3s duration"},
				requiredVariant: VariantAny,
			},
			{
				name:            "Circle of Wrath",
				description:     "The damage amplification inside the palace is stronger.",
				effects:         []string{"amplification increase"},
				maxLevel:        2,
				levelBonuses:    []string{"+5% amplification", "+10% amplification"},
				requiredVariant: "Forbidden Palace",
			},
		},
	},
	{
		skillName: "Mystic Allies",
		variants: []variantDef{
			{
				name:        "Fire Allies",
				description: "Your allies wreathe themselves in flame, burning enemies they strike.",
				effects:     []string{"burning strikes"},
			},
			{
				name:        "Water Allies",
				description: "Your allies crash through enemies as waves, freezing them briefly.",
				effects:     []string{"freezing wave attacks"},
			},
		},
		buffs: []buffDef{
			{
				name:            "Enduring Allies",
				description:     "Allies remain longer at your side.",
				effects:         []string{"summon duration increase"},
				maxLevel:        2,
				levelBonuses:    []string{"+5s duration", "+10s duration"},
				requiredVariant: VariantAny,
			},
		},
	},
	{
		skillName: "Shield of Zen",
		variants: []variantDef{
			{
				name:        "Transcendence",
				description: "The guardian absorbs a portion of damage dealt to all nearby allies.",
				effects:     []string{"party-wide absorption"},
			},
		},
		buffs: []buffDef{
			{
				name:            "Serenity",
				description:     "The shield also grants immunity to control effects.",
				effects:         []string{"control immunity while shielded"},
				maxLevel:        1,
				levelBonuses:    []string{"immune to stun and slow"},
				requiredVariant: VariantAny,
			},
		},
	},
	{
		skillName: "Tempest Rush",
		variants: []variantDef{
			{
				name:        "Gale Force",
				description: "The rush leaves a tailwind that hastens allies who cross it.",
				effects:     []string{"tailwind haste for allies"},
			},
		},
		buffs: []buffDef{
			{
				name:            "Headwind",
				description:     "Enemies knocked aside are also slowed.",
				effects:         []string{"slow on knockback"},
				maxLevel:        2,
				levelBonuses:    []string{"20% slow", "35% slow"},
				requiredVariant: VariantAny,
			},
		},
	},
}
