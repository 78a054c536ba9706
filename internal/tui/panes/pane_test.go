package panes

import "testing"

func TestCalculatePaneLayout(t *testing.T) {
	cfg := DefaultConfig().Pane

	tests := []struct {
		name   string
		width  int
		height int
		want   PaneLayout
	}{
		{
			name: "standard terminal", width: 80, height: 24,
			// top row outer: 24 - 1 - 2 - 5 = 16; vertical outer 28, grid outer 52
			want: PaneLayout{
				Vertical:   Dim{26, 14},
				Grid:       Dim{50, 14},
				Horizontal: Dim{78, 3},
			},
		},
		{
			name: "wide terminal", width: 200, height: 50,
			// vertical outer 70, grid outer 130, top outer 42
			want: PaneLayout{
				Vertical:   Dim{68, 40},
				Grid:       Dim{128, 40},
				Horizontal: Dim{198, 3},
			},
		},
		{
			name: "tiny terminal enforces minimums", width: 20, height: 8,
			want: PaneLayout{
				Vertical:   Dim{10, 3},
				Grid:       Dim{11, 3},
				Horizontal: Dim{18, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePaneLayout(tt.width, tt.height, cfg)
			if got != tt.want {
				t.Errorf("CalculatePaneLayout(%d, %d) = %+v, want %+v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"large terminal clamps to max", 200, 70},
		{"normal terminal uses percent", 100, 50},
		{"small terminal uses min", 60, 40},
		{"very small terminal", 20, 16}, // min 40, capped at 20 - 4
		{"tiny terminal clamps to 1", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateModalWidth(tt.terminalWidth, cfg)
			if got != tt.want {
				t.Errorf("CalculateModalWidth(%d) = %d, want %d", tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestCalculatePickerRows(t *testing.T) {
	cfg := DefaultConfig().Picker

	tests := []struct {
		height int
		want   int
	}{
		{24, 10}, // (24 - 4) / 2
		{25, 10},
		{5, 1},
		{0, 1},
	}

	for _, tt := range tests {
		if got := CalculatePickerRows(tt.height, cfg); got != tt.want {
			t.Errorf("CalculatePickerRows(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		total    int
		viewport int
		want     int
	}{
		{"everything fits", 3, 5, 10, 0},
		{"near top", 2, 50, 10, 0},
		{"centred", 20, 50, 10, 15},
		{"near bottom clamps", 48, 50, 10, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportOffset(tt.selected, tt.total, tt.viewport)
			if got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.viewport, got, tt.want)
			}
		})
	}
}
