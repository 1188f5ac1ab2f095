package utils

import (
	"encoding/json"
	"errors"
	"sort"
)

// Tipos de bloque que puede llevar una página de invitación.
const (
	BlockHero      = "hero"
	BlockTimeline  = "timeline"
	BlockLocation  = "location"
	BlockMenu      = "menu"
	BlockGallery   = "gallery"
	BlockRSVP      = "rsvp"
	BlockStory     = "story"
	BlockGifts     = "gifts"
	BlockDresscode = "dresscode"
	BlockFAQ       = "faq"
)

type BlockConfig struct {
	Type    string `json:"type"`
	Order   int    `json:"order"`
	Enabled bool   `json:"enabled"`
}

type HeroData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type TimelineItem struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type TimelineData struct {
	Items []TimelineItem `json:"items"`
}

type LocationData struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	MapURL  string `json:"map_url,omitempty"`
}

type MenuSection struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type MenuData struct {
	Sections []MenuSection `json:"sections"`
}

type GalleryData struct {
	Images []string `json:"images"`
}

type RSVPData struct {
	Deadline *int64 `json:"deadline,omitempty"`
}

// EventBlocks es el contenido blocks_json del evento: la lista de bloques
// configurados más un payload opcional por tipo, en lugar de un diccionario
// abierto.
type EventBlocks struct {
	Blocks   []BlockConfig `json:"blocks"`
	Hero     *HeroData     `json:"hero,omitempty"`
	Timeline *TimelineData `json:"timeline,omitempty"`
	Location *LocationData `json:"location,omitempty"`
	Menu     *MenuData     `json:"menu,omitempty"`
	Gallery  *GalleryData  `json:"gallery,omitempty"`
	RSVP     *RSVPData     `json:"rsvp,omitempty"`
}

// RenderedBlock lleva a lo sumo un payload poblado, según Type.
type RenderedBlock struct {
	Type        string        `json:"type"`
	Order       int           `json:"order"`
	Placeholder bool          `json:"placeholder,omitempty"`
	Hero        *HeroData     `json:"hero,omitempty"`
	Timeline    *TimelineData `json:"timeline,omitempty"`
	Location    *LocationData `json:"location,omitempty"`
	Menu        *MenuData     `json:"menu,omitempty"`
	Gallery     *GalleryData  `json:"gallery,omitempty"`
	RSVP        *RSVPData     `json:"rsvp,omitempty"`
}

func ParseBlocks(raw []byte) (*EventBlocks, error) {
	if len(raw) == 0 {
		return &EventBlocks{}, nil
	}
	var b EventBlocks
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, errors.New("blocks no es JSON válido")
	}
	return &b, nil
}

// DefaultBlocks es la configuración inicial de un evento nuevo.
func DefaultBlocks() *EventBlocks {
	return &EventBlocks{
		Blocks: []BlockConfig{
			{Type: BlockHero, Order: 0, Enabled: true},
			{Type: BlockRSVP, Order: 1, Enabled: true},
		},
	}
}

// ResolveBlocks filtra los bloques habilitados, los ordena por order
// (orden estable para empates) y resuelve el payload de cada uno.
// Timeline y menu sin datos no se renderizan; los tipos seleccionados pero
// sin implementación salen como placeholder.
func ResolveBlocks(eb *EventBlocks) []RenderedBlock {
	if eb == nil {
		return nil
	}
	enabled := make([]BlockConfig, 0, len(eb.Blocks))
	for _, b := range eb.Blocks {
		if b.Enabled {
			enabled = append(enabled, b)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})

	out := make([]RenderedBlock, 0, len(enabled))
	for _, b := range enabled {
		rb := RenderedBlock{Type: b.Type, Order: b.Order}
		switch b.Type {
		case BlockHero:
			rb.Hero = eb.Hero
		case BlockRSVP:
			rb.RSVP = eb.RSVP
		case BlockLocation:
			rb.Location = eb.Location
		case BlockTimeline:
			if eb.Timeline == nil || len(eb.Timeline.Items) == 0 {
				continue
			}
			rb.Timeline = eb.Timeline
		case BlockMenu:
			if eb.Menu == nil || len(eb.Menu.Sections) == 0 {
				continue
			}
			rb.Menu = eb.Menu
		case BlockGallery:
			if eb.Gallery == nil || len(eb.Gallery.Images) == 0 {
				rb.Placeholder = true
			} else {
				rb.Gallery = eb.Gallery
			}
		case BlockStory, BlockGifts, BlockDresscode, BlockFAQ:
			// seleccionables desde el editor pero todavía sin contenido propio
			rb.Placeholder = true
		default:
			continue
		}
		out = append(out, rb)
	}
	return out
}
