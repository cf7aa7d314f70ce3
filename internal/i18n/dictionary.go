package i18n

// uiText holds the static labels used when rendering engine output for
// display (balance log, fallback labels, catalog group names).
var uiText = map[string]Text{
	"ui_log_mana":      {EN: "Mana Cost", ES: "Coste de Maná"},
	"ui_log_vp":        {EN: "Total VP", ES: "VP Total"},
	"ui_log_base":      {EN: "Base", ES: "Base"},
	"ui_log_stats":     {EN: "Stats", ES: "Estadísticas"},
	"ui_log_keywords":  {EN: "Keywords", ES: "Palabras Clave"},
	"ui_log_abilities": {EN: "Abilities", ES: "Habilidades"},
	"ui_log_discount":  {EN: "Rarity Discount", ES: "Descuento Rareza"},
	"ui_log_typemod":   {EN: "Type Mod", ES: "Mod. de Tipo"},
	"ui_log_capped":    {EN: "Cost capped at", ES: "Coste limitado a"},
	"ui_log_realcost":  {EN: "Real cost", ES: "Coste real"},

	"ui_ab_opt_none":    {EN: "No Condition", ES: "Sin Condición"},
	"ui_ab_grp_generic": {EN: "Generic", ES: "Genérico"},
	"ui_ab_grp_tribal":  {EN: "Tribal", ES: "Tribal"},

	"ui_fallback_ability": {EN: "Ability", ES: "Habilidad"},
	"ui_fallback_tribe":   {EN: "Tribe", ES: "Tribu"},
	"ui_fallback_keyword": {EN: "Keyword", ES: "Palabra Clave"},
	"ui_fallback_effect":  {EN: "Do Effect", ES: "Hacer Efecto"},

	"ui_label_attack":     {EN: "Attack", ES: "Ataque"},
	"ui_label_health":     {EN: "Health", ES: "Salud"},
	"ui_label_durability": {EN: "Durability", ES: "Durabilidad"},
}

// UIText returns the interface string for key in lang. Missing keys render
// as "[key]" so gaps are visible rather than blank.
func UIText(key string, lang Lang) string {
	t, ok := uiText[key]
	if !ok {
		return "[" + key + "]"
	}
	if s := t[lang]; s != "" {
		return s
	}
	return t[Default]
}
