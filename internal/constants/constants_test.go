package constants

import (
	"testing"
	"time"

	"github.com/weatherrecap/weatherrecap/internal/domain"
)

func TestDefaultValues(t *testing.T) {
	if DefaultPort != "3000" {
		t.Errorf("Expected DefaultPort to be '3000', got '%s'", DefaultPort)
	}

	if DefaultDBDriver != DriverSQLite {
		t.Errorf("Expected DefaultDBDriver to be '%s', got '%s'", DriverSQLite, DefaultDBDriver)
	}

	if DefaultMaxConns != 10 {
		t.Errorf("Expected DefaultMaxConns to be 10, got %d", DefaultMaxConns)
	}

	if DefaultRenderCommand != "npm run render-video" {
		t.Errorf("Expected DefaultRenderCommand to be 'npm run render-video', got '%s'", DefaultRenderCommand)
	}

	if DefaultRenderOutput != "out/video.mp4" {
		t.Errorf("Expected DefaultRenderOutput to be 'out/video.mp4', got '%s'", DefaultRenderOutput)
	}
}

func TestCompositionLayout(t *testing.T) {
	if CompositionFPS != 30 {
		t.Errorf("Expected CompositionFPS to be 30, got %d", CompositionFPS)
	}
	if CompositionWidth != 1920 || CompositionHeight != 1080 {
		t.Errorf("Expected 1920x1080, got %dx%d", CompositionWidth, CompositionHeight)
	}
	if DefaultIntroFrames != 150 {
		t.Errorf("Expected DefaultIntroFrames to be 150, got %d", DefaultIntroFrames)
	}
	if DefaultChartFrames != 300 {
		t.Errorf("Expected DefaultChartFrames to be 300, got %d", DefaultChartFrames)
	}
}

func TestRenderStatuses(t *testing.T) {
	statuses := []string{
		string(domain.RenderStatusPending),
		string(domain.RenderStatusCompleted),
		string(domain.RenderStatusFailed),
	}

	seen := make(map[string]bool)
	for _, s := range statuses {
		if s == "" {
			t.Error("Render status constant should not be empty")
		}
		if seen[s] {
			t.Errorf("Duplicate render status %q", s)
		}
		seen[s] = true
	}
}

func TestTimeouts(t *testing.T) {
	if DefaultRenderTimeout != 10*time.Minute {
		t.Errorf("Expected DefaultRenderTimeout to be 10 minutes, got %v", DefaultRenderTimeout)
	}

	if DefaultShutdownTimeout != 5*time.Second {
		t.Errorf("Expected DefaultShutdownTimeout to be 5 seconds, got %v", DefaultShutdownTimeout)
	}
}

func TestPermissions(t *testing.T) {
	if DirPermissions != 0755 {
		t.Errorf("Expected DirPermissions to be 0755, got %o", DirPermissions)
	}

	if FilePermissions != 0644 {
		t.Errorf("Expected FilePermissions to be 0644, got %o", FilePermissions)
	}
}
