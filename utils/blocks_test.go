package utils

import "testing"

func TestResolveBlocksOrderAndFilter(t *testing.T) {
	eb := &EventBlocks{
		Blocks: []BlockConfig{
			{Type: BlockRSVP, Order: 2, Enabled: true},
			{Type: BlockHero, Order: 1, Enabled: true},
			{Type: BlockMenu, Order: 0, Enabled: false},
		},
	}

	out := ResolveBlocks(eb)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Type != BlockHero || out[1].Type != BlockRSVP {
		t.Errorf("sequence = [%s %s], want [hero rsvp]", out[0].Type, out[1].Type)
	}
}

func TestResolveBlocksSkipsEmptyTimelineAndMenu(t *testing.T) {
	eb := &EventBlocks{
		Blocks: []BlockConfig{
			{Type: BlockTimeline, Order: 0, Enabled: true},
			{Type: BlockMenu, Order: 1, Enabled: true},
			{Type: BlockHero, Order: 2, Enabled: true},
		},
	}
	out := ResolveBlocks(eb)
	if len(out) != 1 || out[0].Type != BlockHero {
		t.Fatalf("timeline/menu sin datos deben omitirse, got %+v", out)
	}

	eb.Timeline = &TimelineData{Items: []TimelineItem{{Time: "18:00", Title: "Ceremonia"}}}
	eb.Menu = &MenuData{Sections: []MenuSection{{Name: "Entradas", Items: []string{"Sopa"}}}}
	out = ResolveBlocks(eb)
	if len(out) != 3 {
		t.Fatalf("con datos deben renderizar, got %d bloques", len(out))
	}
	if out[0].Timeline == nil || out[1].Menu == nil {
		t.Errorf("payloads faltantes: %+v", out)
	}
}

func TestResolveBlocksPlaceholders(t *testing.T) {
	eb := &EventBlocks{
		Blocks: []BlockConfig{
			{Type: BlockGallery, Order: 0, Enabled: true},
			{Type: BlockStory, Order: 1, Enabled: true},
			{Type: BlockGifts, Order: 2, Enabled: true},
		},
	}
	out := ResolveBlocks(eb)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	for _, b := range out {
		if !b.Placeholder {
			t.Errorf("%s should be placeholder", b.Type)
		}
	}

	// galería con imágenes sí renderiza con datos
	eb.Gallery = &GalleryData{Images: []string{"https://cdn/img1.jpg"}}
	out = ResolveBlocks(eb)
	if out[0].Placeholder || out[0].Gallery == nil {
		t.Errorf("gallery con datos no debe ser placeholder: %+v", out[0])
	}
}

func TestResolveBlocksStableTies(t *testing.T) {
	eb := &EventBlocks{
		Blocks: []BlockConfig{
			{Type: BlockHero, Order: 0, Enabled: true},
			{Type: BlockLocation, Order: 0, Enabled: true},
		},
	}
	out := ResolveBlocks(eb)
	if len(out) != 2 || out[0].Type != BlockHero || out[1].Type != BlockLocation {
		t.Errorf("empates deben conservar el orden de entrada: %+v", out)
	}
}

func TestResolveBlocksUnknownTypeSkipped(t *testing.T) {
	eb := &EventBlocks{
		Blocks: []BlockConfig{{Type: "countdown", Order: 0, Enabled: true}},
	}
	if out := ResolveBlocks(eb); len(out) != 0 {
		t.Errorf("unknown type should be skipped, got %+v", out)
	}
}
