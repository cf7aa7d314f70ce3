package catalog

import "github.com/xtding233/cardforge/internal/i18n"

// Built-in ids. The tables below are the closed set the engines know about;
// overrides may re-price them but not add new ones.
const (
	TriggerOnPlay        TriggerID = "on_play"
	TriggerOnDeath       TriggerID = "on_death"
	TriggerOnEndTurn     TriggerID = "on_end_turn"
	TriggerOnStartTurn   TriggerID = "on_start_turn"
	TriggerOnDamageTaken TriggerID = "on_damage_taken"
	TriggerOnAttack      TriggerID = "on_attack"
	TriggerOnSpellCast   TriggerID = "on_spell_cast"
	TriggerOnInspire     TriggerID = "on_inspire"
	TriggerCombo         TriggerID = "combo"
	TriggerPassive       TriggerID = "passive"
)

const (
	TargetNone              TargetID = "none"
	TargetAny               TargetID = "target_any"
	TargetEnemyMinion       TargetID = "target_enemy_minion"
	TargetRandomEnemyMinion TargetID = "random_enemy_minion"
	TargetAllEnemies        TargetID = "all_enemies"
	TargetAllOtherMinions   TargetID = "all_other_minions"
	TargetFriendlyHero      TargetID = "friendly_hero"
	TargetEnemyHero         TargetID = "enemy_hero"
	TargetSelf              TargetID = "self"
	TargetAllFriendly       TargetID = "all_friendly"
	TargetFriendlyTribe     TargetID = "target_friendly_tribe"
	TargetEnemyTribe        TargetID = "target_enemy_tribe"
	TargetAllFriendlyTribe  TargetID = "all_friendly_tribe"
)

const (
	ConditionNone              ConditionID = "none"
	ConditionHandEmpty         ConditionID = "if_hand_empty"
	ConditionHoldingSpell      ConditionID = "if_holding_spell"
	ConditionOpponentFullHP    ConditionID = "if_opponent_full_health"
	ConditionHighlander        ConditionID = "if_highlander"
	ConditionHoldingTribe      ConditionID = "holding_tribe"
	ConditionControllingTribe  ConditionID = "controlling_tribe"
	ConditionFriendlyTribeDied ConditionID = "friendly_tribe_died"
)

const (
	EffectDealDamage        EffectID = "deal_damage"
	EffectRestoreHealth     EffectID = "restore_health"
	EffectGainArmor         EffectID = "gain_armor"
	EffectDestroyMinion     EffectID = "destroy_minion"
	EffectSilence           EffectID = "silence"
	EffectFreeze            EffectID = "freeze"
	EffectReturnToHand      EffectID = "return_to_hand"
	EffectTransformSheep    EffectID = "transform_sheep"
	EffectGiveStats         EffectID = "give_stats"
	EffectGiveKeyword       EffectID = "give_keyword"
	EffectDrawCard          EffectID = "draw_card"
	EffectAddRandomClass    EffectID = "add_random_class"
	EffectGainMana          EffectID = "gain_mana"
	EffectReduceCost        EffectID = "reduce_cost"
	EffectSummonToken       EffectID = "summon_token"
	EffectSummonCopy        EffectID = "summon_copy"
	EffectEquipWeapon       EffectID = "equip_weapon"
	EffectDiscoverTribe     EffectID = "discover_tribe"
	EffectSummonTribeRandom EffectID = "summon_tribe_random"
)

const (
	KeywordTaunt        KeywordID = "taunt"
	KeywordDivineShield KeywordID = "divine_shield"
	KeywordCharge       KeywordID = "charge"
	KeywordRush         KeywordID = "rush"
	KeywordStealth      KeywordID = "stealth"
	KeywordWindfury     KeywordID = "windfury"
	KeywordPoisonous    KeywordID = "poisonous"
	KeywordLifesteal    KeywordID = "lifesteal"
	KeywordReborn       KeywordID = "reborn"
	KeywordElusive      KeywordID = "elusive"
	KeywordFreezeTouch  KeywordID = "freeze_touch"
	KeywordSpellDamage  KeywordID = "spell_damage"
)

const (
	RarityCommon    RarityID = "common"
	RarityRare      RarityID = "rare"
	RarityEpic      RarityID = "epic"
	RarityLegendary RarityID = "legendary"
)

const (
	Minion CardType = "minion"
	Spell  CardType = "spell"
	Weapon CardType = "weapon"
)

// TribeNeutral is the permanent tribe every table keeps.
const TribeNeutral TribeID = "neutral"

// DefaultBalance: one mana is roughly two value points.
var DefaultBalance = Balance{
	VPPerMana:  2.0,
	BaseCardVP: 1.0,
	MinMana:    0,
	MaxMana:    10,
	AttackUnit: 1.0,
	HealthUnit: 1.0,
}

var defaultTriggers = []Trigger{
	{ID: TriggerOnPlay, Multiplier: 1.0,
		Name:        i18n.Text{i18n.EN: "Battlecry", i18n.ES: "Grito de Batalla"},
		Description: i18n.Text{i18n.EN: "When you play this card.", i18n.ES: "Al jugar esta carta."}},
	{ID: TriggerOnDeath, Multiplier: 0.8,
		Name:        i18n.Text{i18n.EN: "Deathrattle", i18n.ES: "Último Aliento"},
		Description: i18n.Text{i18n.EN: "When this minion dies.", i18n.ES: "Cuando este esbirro muere."}},
	{ID: TriggerOnEndTurn, Multiplier: 1.2,
		Name:        i18n.Text{i18n.EN: "End of Turn", i18n.ES: "Al final del turno"},
		Description: i18n.Text{i18n.EN: "At the end of your turn.", i18n.ES: "Al final de tu turno."}},
	{ID: TriggerOnStartTurn, Multiplier: 1.3,
		Name:        i18n.Text{i18n.EN: "Start of Turn", i18n.ES: "Al inicio del turno"},
		Description: i18n.Text{i18n.EN: "At the start of your turn.", i18n.ES: "Al inicio de tu turno."}},
	{ID: TriggerOnDamageTaken, Multiplier: 1.1,
		Name:        i18n.Text{i18n.EN: "Enrage / On Damage", i18n.ES: "Enfurecer / Al recibir daño"},
		Description: i18n.Text{i18n.EN: "Whenever this minion takes damage.", i18n.ES: "Cada vez que este esbirro recibe daño."}},
	{ID: TriggerOnAttack, Multiplier: 1.1,
		Name:        i18n.Text{i18n.EN: "On Attack", i18n.ES: "Al Atacar"},
		Description: i18n.Text{i18n.EN: "Whenever this minion attacks.", i18n.ES: "Cada vez que este esbirro ataca."}},
	{ID: TriggerOnSpellCast, Multiplier: 1.3,
		Name:        i18n.Text{i18n.EN: "Spellburst", i18n.ES: "Al lanzar hechizo"},
		Description: i18n.Text{i18n.EN: "Whenever you cast a spell.", i18n.ES: "Cada vez que lanzas un hechizo."}},
	{ID: TriggerOnInspire, Multiplier: 0.9,
		Name:        i18n.Text{i18n.EN: "Inspire", i18n.ES: "Inspirar"},
		Description: i18n.Text{i18n.EN: "After you use your Hero Power.", i18n.ES: "Después de usar tu Poder de Héroe."}},
	{ID: TriggerCombo, Multiplier: 0.9,
		Name:        i18n.Text{i18n.EN: "Combo", i18n.ES: "Combo"},
		Description: i18n.Text{i18n.EN: "If you played another card first.", i18n.ES: "Si jugaste otra carta antes."}},
	{ID: TriggerPassive, Multiplier: 1.0,
		Name:        i18n.Text{i18n.EN: "Passive Aura", i18n.ES: "Aura Pasiva"},
		Description: i18n.Text{i18n.EN: "Always active.", i18n.ES: "Siempre activo."}},
}

var defaultTargets = []Target{
	{ID: TargetNone, Multiplier: 1.0, Name: i18n.Text{i18n.EN: "None / Auto", i18n.ES: "Ninguno / Auto"}},
	{ID: TargetAny, Multiplier: 1.2, RequiresSelection: true, Name: i18n.Text{i18n.EN: "Target Any", i18n.ES: "Cualquier Objetivo"}},
	{ID: TargetEnemyMinion, Multiplier: 1.1, RequiresSelection: true, Name: i18n.Text{i18n.EN: "Target Enemy Minion", i18n.ES: "Esbirro Enemigo (Obj)"}},
	{ID: TargetRandomEnemyMinion, Multiplier: 1.0, Name: i18n.Text{i18n.EN: "Random Enemy Minion", i18n.ES: "Esbirro Enemigo Aleatorio"}},
	{ID: TargetAllEnemies, Multiplier: 2.5, Name: i18n.Text{i18n.EN: "All Enemies", i18n.ES: "Todos los Enemigos"}},
	{ID: TargetAllOtherMinions, Multiplier: 2.5, Name: i18n.Text{i18n.EN: "All Other Minions", i18n.ES: "Todos los demás esbirros"}},
	{ID: TargetFriendlyHero, Multiplier: 1.0, Name: i18n.Text{i18n.EN: "Your Hero", i18n.ES: "Tu Héroe"}},
	{ID: TargetEnemyHero, Multiplier: 1.1, Name: i18n.Text{i18n.EN: "Enemy Hero", i18n.ES: "Héroe Enemigo"}},
	{ID: TargetSelf, Multiplier: 1.0, Name: i18n.Text{i18n.EN: "Self", i18n.ES: "A sí mismo"}},
	{ID: TargetAllFriendly, Multiplier: 2.2, Name: i18n.Text{i18n.EN: "All Friendly", i18n.ES: "Todos los aliados"}},

	{ID: TargetFriendlyTribe, Multiplier: 1.0, Tribal: true, Name: i18n.Text{i18n.EN: "Friendly [Tribe]", i18n.ES: "[Tribu] Aliado"}},
	{ID: TargetEnemyTribe, Multiplier: 0.9, Tribal: true, Name: i18n.Text{i18n.EN: "Enemy [Tribe]", i18n.ES: "[Tribu] Enemigo"}},
	{ID: TargetAllFriendlyTribe, Multiplier: 1.8, Tribal: true, Name: i18n.Text{i18n.EN: "All Friendly [Tribe]s", i18n.ES: "Todos los [Tribu] aliados"}},
}

var defaultGenericConditions = []Condition{
	{ID: ConditionNone, Multiplier: 1.0, Name: i18n.Text{i18n.EN: "None", i18n.ES: "Ninguna"}},
	{ID: ConditionHandEmpty, Multiplier: 0.7, Name: i18n.Text{i18n.EN: "If hand is empty", i18n.ES: "Si la mano está vacía"}},
	{ID: ConditionHoldingSpell, Multiplier: 0.9, Name: i18n.Text{i18n.EN: "If holding a Spell", i18n.ES: "Si tienes un hechizo"}},
	{ID: ConditionOpponentFullHP, Multiplier: 0.9, Name: i18n.Text{i18n.EN: "If opponent has full HP", i18n.ES: "Si el oponente tiene la vida llena"}},
	{ID: ConditionHighlander, Multiplier: 0.6, Name: i18n.Text{i18n.EN: "If deck has no duplicates", i18n.ES: "Si el mazo no tiene duplicados"}},
}

// Tribal conditions are discounted because they can fail: holding is easy,
// controlling depends on the board.
var defaultTribalConditions = []Condition{
	{ID: ConditionHoldingTribe, Multiplier: 0.8, Tribal: true, Name: i18n.Text{i18n.EN: "If holding a [Tribe]", i18n.ES: "Si tienes un [Tribu] en mano"}},
	{ID: ConditionControllingTribe, Multiplier: 0.7, Tribal: true, Name: i18n.Text{i18n.EN: "If you control a [Tribe]", i18n.ES: "Si controlas un [Tribu]"}},
	{ID: ConditionFriendlyTribeDied, Multiplier: 0.75, Tribal: true, Name: i18n.Text{i18n.EN: "If a [Tribe] died this turn", i18n.ES: "Si un [Tribu] murió este turno"}},
}

var defaultEffects = []Effect{
	// damage & healing
	{ID: EffectDealDamage, Base: 1.0, Unit: 2.0, Input: InputValue, Label: "Amount",
		Name: i18n.Text{i18n.EN: "Deal Damage", i18n.ES: "Infligir Daño"}},
	{ID: EffectRestoreHealth, Base: 0.5, Unit: 1.0, Input: InputValue, Label: "Amount",
		Name: i18n.Text{i18n.EN: "Restore Health", i18n.ES: "Restaurar Salud"}},
	{ID: EffectGainArmor, Base: 0.5, Unit: 1.0, Input: InputValue, Label: "Amount",
		Name: i18n.Text{i18n.EN: "Gain Armor", i18n.ES: "Ganar Armadura"}},

	// board state
	{ID: EffectDestroyMinion, Base: 9.0, Name: i18n.Text{i18n.EN: "Destroy Minion", i18n.ES: "Destruir Esbirro"}},
	{ID: EffectSilence, Base: 2.5, Name: i18n.Text{i18n.EN: "Silence", i18n.ES: "Silenciar"}},
	{ID: EffectFreeze, Base: 2.0, Name: i18n.Text{i18n.EN: "Freeze", i18n.ES: "Congelar"}},
	{ID: EffectReturnToHand, Base: 4.0, Name: i18n.Text{i18n.EN: "Return to Hand (Sap)", i18n.ES: "Devolver a la mano"}},
	{ID: EffectTransformSheep, Base: 6.0, Name: i18n.Text{i18n.EN: "Polymorph (1/1)", i18n.ES: "Polimorfia (1/1)"}},

	// buffs
	{ID: EffectGiveStats, Base: 0, Unit: 2.0, Input: InputStats, Label: "Buff Stats",
		Name: i18n.Text{i18n.EN: "Give +X/+X", i18n.ES: "Dar +X/+X"}},
	{ID: EffectGiveKeyword, Input: InputKeyword,
		Name: i18n.Text{i18n.EN: "Give Keyword", i18n.ES: "Dar Palabra Clave"}},

	// economy
	{ID: EffectDrawCard, Base: 2.0, Unit: 3.5, Input: InputValue, Label: "Cards",
		Name: i18n.Text{i18n.EN: "Draw Card(s)", i18n.ES: "Robar Carta(s)"}},
	{ID: EffectAddRandomClass, Base: 1.0, Unit: 2.0, Input: InputValue, Label: "Cards",
		Name: i18n.Text{i18n.EN: "Add Random Class Card", i18n.ES: "Añadir carta de clase aleatoria"}},
	{ID: EffectGainMana, Base: 4.0, Name: i18n.Text{i18n.EN: "Gain Empty Mana Crystal", i18n.ES: "Ganar Cristal de Maná vacío"}},
	{ID: EffectReduceCost, Base: 10.0, Name: i18n.Text{i18n.EN: "Reduce Cost of Hand by (1)", i18n.ES: "Reducir coste de mano en (1)"}},

	// summoning
	{ID: EffectSummonToken, Base: 1.0, Unit: 2.0, Input: InputToken, Label: "Token",
		Name: i18n.Text{i18n.EN: "Summon Token", i18n.ES: "Invocar Ficha"}},
	{ID: EffectSummonCopy, SelfCopy: true,
		Name: i18n.Text{i18n.EN: "Summon Copy of Self", i18n.ES: "Invocar Copia de sí mismo"}},

	// weapons
	{ID: EffectEquipWeapon, Base: 1.0, Unit: 1.5, Input: InputStats, Label: "Weapon (Atk/Dur)",
		Name: i18n.Text{i18n.EN: "Equip Weapon", i18n.ES: "Equipar Arma"}},

	// tribal
	{ID: EffectDiscoverTribe, Base: 2.0, Input: InputTribe, Tribal: true,
		Name: i18n.Text{i18n.EN: "Discover a [Tribe]", i18n.ES: "Descubre un [Tribu]"}},
	{ID: EffectSummonTribeRandom, Base: 3.0, Input: InputTribe, Tribal: true,
		Name: i18n.Text{i18n.EN: "Summon random [Tribe]", i18n.ES: "Invoca [Tribu] aleatorio"}},
}

var defaultKeywords = []Keyword{
	{ID: KeywordTaunt, Cost: 1.0,
		Name:        i18n.Text{i18n.EN: "Taunt", i18n.ES: "Provocar"},
		Description: i18n.Text{i18n.EN: "Enemies must attack this minion.", i18n.ES: "Los enemigos deben atacar a este esbirro."}},
	{ID: KeywordDivineShield, Cost: 2.5,
		Name:        i18n.Text{i18n.EN: "Divine Shield", i18n.ES: "Escudo Divino"},
		Description: i18n.Text{i18n.EN: "Ignore the first damage.", i18n.ES: "Ignora el primer daño recibido."}},
	{ID: KeywordCharge, Cost: 3.0,
		Name:        i18n.Text{i18n.EN: "Charge", i18n.ES: "Carga"},
		Description: i18n.Text{i18n.EN: "Can attack immediately.", i18n.ES: "Puede atacar inmediatamente."}},
	{ID: KeywordRush, Cost: 2.0,
		Name:        i18n.Text{i18n.EN: "Rush", i18n.ES: "Acometida"},
		Description: i18n.Text{i18n.EN: "Can attack minions immediately.", i18n.ES: "Puede atacar a esbirros inmediatamente."}},
	{ID: KeywordStealth, Cost: 1.5,
		Name:        i18n.Text{i18n.EN: "Stealth", i18n.ES: "Sigilo"},
		Description: i18n.Text{i18n.EN: "Untargetable until it attacks.", i18n.ES: "No puede ser objetivo hasta que ataque."}},
	{ID: KeywordWindfury, Cost: 3.0,
		Name:        i18n.Text{i18n.EN: "Windfury", i18n.ES: "Viento Furioso"},
		Description: i18n.Text{i18n.EN: "Attacks twice per turn.", i18n.ES: "Ataca dos veces por turno."}},
	{ID: KeywordPoisonous, Cost: 4.0,
		Name:        i18n.Text{i18n.EN: "Poisonous", i18n.ES: "Venenoso"},
		Description: i18n.Text{i18n.EN: "Destroy any minion damaged by this.", i18n.ES: "Destruye cualquier esbirro dañado por esto."}},
	{ID: KeywordLifesteal, Cost: 2.0,
		Name:        i18n.Text{i18n.EN: "Lifesteal", i18n.ES: "Robo de Vida"},
		Description: i18n.Text{i18n.EN: "Damage dealt heals your hero.", i18n.ES: "El daño infligido cura a tu héroe."}},
	{ID: KeywordReborn, Cost: 2.5,
		Name:        i18n.Text{i18n.EN: "Reborn", i18n.ES: "Renacer"},
		Description: i18n.Text{i18n.EN: "Resurrects with 1 Health when dead.", i18n.ES: "Resucita con 1 Salud al morir."}},
	{ID: KeywordElusive, Cost: 1.5,
		Name:        i18n.Text{i18n.EN: "Elusive", i18n.ES: "Esquivo"},
		Description: i18n.Text{i18n.EN: "Can't be targeted by spells or Hero Powers.", i18n.ES: "No puede ser objetivo de hechizos ni Poderes de Héroe."}},
	{ID: KeywordFreezeTouch, Cost: 2.0,
		Name:        i18n.Text{i18n.EN: "Freeze Touch", i18n.ES: "Toque Helado"},
		Description: i18n.Text{i18n.EN: "Freeze any character damaged by this.", i18n.ES: "Congela a cualquier personaje dañado por esto."}},
	{ID: KeywordSpellDamage, Cost: 1.5, Stackable: true,
		Name:        i18n.Text{i18n.EN: "Spell Damage", i18n.ES: "Daño con Hechizos"},
		Description: i18n.Text{i18n.EN: "Your spells deal extra damage.", i18n.ES: "Tus hechizos infligen daño adicional."}},
}

// Rarity discounts are subtracted from the running total: legendaries get
// free stats.
var defaultRarities = []Rarity{
	{ID: RarityCommon, Discount: 0, Color: "#a8a8a8", Name: i18n.Text{i18n.EN: "Common", i18n.ES: "Común"}},
	{ID: RarityRare, Discount: 1.0, Color: "#0070dd", Name: i18n.Text{i18n.EN: "Rare", i18n.ES: "Rara"}},
	{ID: RarityEpic, Discount: 2.0, Color: "#a335ee", Name: i18n.Text{i18n.EN: "Epic", i18n.ES: "Épica"}},
	{ID: RarityLegendary, Discount: 3.0, Color: "#ff8000", Name: i18n.Text{i18n.EN: "Legendary", i18n.ES: "Legendaria"}},
}

// Spells leave no body (0.8x); weapons have inherent charge (1.2x).
var defaultCardTypes = []CardTypeDef{
	{ID: Minion, Modifier: 1.0, HasStats: true, HealthLabel: "ui_label_health",
		Name:        i18n.Text{i18n.EN: "Minion", i18n.ES: "Esbirro"},
		Description: i18n.Text{i18n.EN: "A creature that fights on the board.", i18n.ES: "Una criatura que lucha en el tablero."}},
	{ID: Spell, Modifier: 0.8,
		Name:        i18n.Text{i18n.EN: "Spell", i18n.ES: "Hechizo"},
		Description: i18n.Text{i18n.EN: "A one-time effect.", i18n.ES: "Un efecto de un solo uso."}},
	{ID: Weapon, Modifier: 1.2, HasStats: true, HealthLabel: "ui_label_durability",
		Name:        i18n.Text{i18n.EN: "Weapon", i18n.ES: "Arma"},
		Description: i18n.Text{i18n.EN: "Equip your hero to attack.", i18n.ES: "Equipa a tu héroe para atacar."}},
}
