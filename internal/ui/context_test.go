package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	ctx1 := GetViewContext()
	ctx2 := GetViewContext()

	if ctx1 != ctx2 {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(120, 40)

	if ctx.TerminalWidth != 120 {
		t.Errorf("Expected TerminalWidth 120, got %d", ctx.TerminalWidth)
	}

	if ctx.TerminalHeight != 40 {
		t.Errorf("Expected TerminalHeight 40, got %d", ctx.TerminalHeight)
	}

	expectedContent := 40 - HeaderHeight - FooterHeight
	if ctx.ContentHeight != expectedContent {
		t.Errorf("Expected ContentHeight %d, got %d", expectedContent, ctx.ContentHeight)
	}

	if ctx.SurfaceWidth != 120-BorderSize {
		t.Errorf("Expected SurfaceWidth %d, got %d", 120-BorderSize, ctx.SurfaceWidth)
	}

	expectedSurface := expectedContent - BorderSize - TitleHeight
	if ctx.SurfaceHeight != expectedSurface {
		t.Errorf("Expected SurfaceHeight %d, got %d", expectedSurface, ctx.SurfaceHeight)
	}
}

func TestViewContext_ClampsTinyTerminal(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(5, 2)

	if ctx.TerminalWidth != MinTerminalWidth || ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("Expected clamp to %dx%d, got %dx%d", MinTerminalWidth, MinTerminalHeight, ctx.TerminalWidth, ctx.TerminalHeight)
	}
	if ctx.SurfaceHeight < 1 {
		t.Errorf("Expected a usable surface, got height %d", ctx.SurfaceHeight)
	}
}

func TestViewContext_InnerWidth(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		panelWidth int
		expected   int
	}{
		{40, 40 - BorderSize},
		{80, 80 - BorderSize},
		{BorderSize, 0},
	}

	for _, tt := range tests {
		result := ctx.InnerWidth(tt.panelWidth)
		if result != tt.expected {
			t.Errorf("InnerWidth(%d) = %d, want %d", tt.panelWidth, result, tt.expected)
		}
	}
}

func TestViewContext_SurfaceOrigin(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(100, 30)

	x, y := ctx.SurfaceOrigin()
	if x != 1 || y != HeaderHeight+1+TitleHeight {
		t.Errorf("SurfaceOrigin() = %d,%d", x, y)
	}
}

func TestViewContext_ConcurrentUpdates(t *testing.T) {
	ctx := GetViewContext()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(80+n, 24+n)
		}(i)
	}
	wg.Wait()

	if ctx.TerminalWidth < 80 || ctx.TerminalWidth > 89 {
		t.Errorf("Unexpected TerminalWidth after concurrent updates: %d", ctx.TerminalWidth)
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeNord)
	if CurrentThemeName() != ThemeNord {
		t.Errorf("Expected nord, got %s", CurrentThemeName())
	}
	if CurrentTheme().Primary != BuiltinThemes[ThemeNord].Primary {
		t.Errorf("Expected current theme palette to be nord's")
	}

	SetThemeByName("no-such-theme")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("Expected unknown theme to fall back to %s, got %s", DefaultTheme, CurrentThemeName())
	}
}

func TestIsTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if !IsTheme(string(name)) {
			t.Errorf("IsTheme(%q) = false", name)
		}
	}
	if IsTheme("plaid") {
		t.Error("IsTheme(plaid) = true")
	}
}
