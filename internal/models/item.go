package models

// Rarity is the 8-tier item rarity scale, ordered Junk to Legendary
type Rarity string

// Rarity tiers
const (
	RarityJunk       Rarity = "Junk"
	RarityBasic      Rarity = "Basic"
	RarityFine       Rarity = "Fine"
	RarityMasterwork Rarity = "Masterwork"
	RarityRare       Rarity = "Rare"
	RarityExotic     Rarity = "Exotic"
	RarityAscended   Rarity = "Ascended"
	RarityLegendary  Rarity = "Legendary"
)

var rarityOrder = map[Rarity]int{
	RarityJunk:       0,
	RarityBasic:      1,
	RarityFine:       2,
	RarityMasterwork: 3,
	RarityRare:       4,
	RarityExotic:     5,
	RarityAscended:   6,
	RarityLegendary:  7,
}

// rarityColors is the single shared tier to color mapping. Every
// surface that shows an item name uses this table.
var rarityColors = map[Rarity]string{
	RarityJunk:       "#AAA",
	RarityBasic:      "#000",
	RarityFine:       "#62A4DA",
	RarityMasterwork: "#1a9306",
	RarityRare:       "#fcd00b",
	RarityExotic:     "#ffa405",
	RarityAscended:   "#fb3e8d",
	RarityLegendary:  "#4C139D",
}

// Order returns the position of the rarity on the Junk to Legendary
// scale. Unknown rarities sort first.
func (r Rarity) Order() int {
	if order, ok := rarityOrder[r]; ok {
		return order
	}
	return -1
}

// Color returns the display color for the rarity. Unknown rarities
// fall back to the Basic color.
func (r Rarity) Color() string {
	if color, ok := rarityColors[r]; ok {
		return color
	}
	return rarityColors[RarityBasic]
}

// ItemType is the discriminant of an item's detail payload
type ItemType string

// Item types
const (
	ItemTypeArmor            ItemType = "Armor"
	ItemTypeBack             ItemType = "Back"
	ItemTypeBag              ItemType = "Bag"
	ItemTypeConsumable       ItemType = "Consumable"
	ItemTypeContainer        ItemType = "Container"
	ItemTypeCraftingMaterial ItemType = "CraftingMaterial"
	ItemTypeGathering        ItemType = "Gathering"
	ItemTypeGizmo            ItemType = "Gizmo"
	ItemTypeTrinket          ItemType = "Trinket"
	ItemTypeTrophy           ItemType = "Trophy"
	ItemTypeUpgradeComponent ItemType = "UpgradeComponent"
	ItemTypeWeapon           ItemType = "Weapon"
)

// Item represents an item record from the backend. Immutable once
// fetched; cached by id for the lifetime of the session.
type Item struct {
	ID          int          `json:"id"`
	ChatLink    string       `json:"chat_link,omitempty"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon,omitempty"`
	Description string       `json:"description,omitempty"`
	Type        ItemType     `json:"type"`
	Level       int          `json:"level"`
	Rarity      Rarity       `json:"rarity"`
	VendorValue int          `json:"vendor_value"`
	Flags       []string     `json:"flags,omitempty"`
	GameTypes   []string     `json:"game_types,omitempty"`
	Details     *ItemDetails `json:"details,omitempty"`
}

// ItemDetails carries the type-specific payload of an item. Which
// fields are set depends on the item Type; consumers must not assume
// presence beyond what the discriminant implies.
type ItemDetails struct {
	// Weapon
	DamageType string `json:"damage_type,omitempty"`
	MinPower   int    `json:"min_power,omitempty"`
	MaxPower   int    `json:"max_power,omitempty"`

	// Armor / Weapon
	WeightClass string `json:"weight_class,omitempty"`
	Defense     int    `json:"defense,omitempty"`

	// Consumable
	ConsumableType string `json:"type,omitempty"`
	DurationMS     int    `json:"duration_ms,omitempty"`
	GuildUpgradeID int    `json:"guild_upgrade_id,omitempty"`

	// Bag
	Size int `json:"size,omitempty"`

	// UpgradeComponent
	Suffix   string   `json:"suffix,omitempty"`
	Bonuses  []string `json:"bonuses,omitempty"`
	InfixID  int      `json:"infix_id,omitempty"`
	RecipeID int      `json:"recipe_id,omitempty"`
}
