package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// runCmd executes the root command with args and returns captured stdout.
func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(out.String()), err
}

func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		ExportDir:     t.TempDir(),
		IsInteractive: func() bool { return false },
	}
}

func TestPromptsCmd_Defaults(t *testing.T) {
	out, err := runCmd(t, testApp(t), "prompts")
	require.NoError(t, err)

	assert.Contains(t, out, "Generated 4 sequential prompts")
	assert.Contains(t, out, "Your Product")
	assert.Contains(t, out, "Step 2: Content Creation — Instagram")
	assert.Contains(t, out, "Step 3: Content Creation — TikTok")
}

func TestPromptsCmd_FullFlags(t *testing.T) {
	out, err := runCmd(t, testApp(t),
		"prompts",
		"--product", "EcoVibe Bottles",
		"--audience", "eco-conscious millennials",
		"--message", "stylish sustainability",
		"--platforms", "LinkedIn,Email",
		"--phases", "Conversion",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Generated 4 sequential prompts")
	assert.Contains(t, out, "Product: EcoVibe Bottles")
	assert.Contains(t, out, "Step 2: Content Creation — LinkedIn")
	assert.Contains(t, out, "the Conversion phase")
}

func TestPromptsCmd_UnknownPlatform(t *testing.T) {
	_, err := runCmd(t, testApp(t), "prompts", "--platforms", "MySpace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown platform")
}

func TestTimelineCmd(t *testing.T) {
	out, err := runCmd(t, testApp(t),
		"timeline",
		"--phases", "Awareness,Conversion",
		"--platforms", "Instagram,Email",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Week 2")
	assert.Contains(t, out, "Create Email content for Conversion")
}

func TestTimelineCmd_WritesCSV(t *testing.T) {
	app := testApp(t)
	csvPath := filepath.Join(app.ExportDir, "timeline.csv")

	_, err := runCmd(t, app,
		"timeline",
		"--phases", "Awareness",
		"--platforms", "TikTok",
		"--csv", csvPath,
	)
	require.NoError(t, err)

	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t,
		"Week,Phase,Platform,Task,Status\nWeek 1,Awareness,TikTok,Create TikTok content for Awareness,Planned\n",
		string(raw))
}

func TestTimelineCmd_UnknownPhase(t *testing.T) {
	_, err := runCmd(t, testApp(t), "timeline", "--phases", "Launch", "--platforms", "Email")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown phase")
}

func TestExportCmd_WritesPlanJSON(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app,
		"export",
		"--product", "EcoVibe",
		"--platforms", "Instagram",
		"--phases", "Awareness",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Campaign plan written to")

	raw, err := os.ReadFile(filepath.Join(app.ExportDir, "campaign_plan.json"))
	require.NoError(t, err)

	var doc struct {
		CampaignData struct {
			ProductName string `json:"product_name"`
		} `json:"campaign_data"`
		Prompts     []map[string]string `json:"prompts"`
		GeneratedAt string              `json:"generated_at"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "EcoVibe", doc.CampaignData.ProductName)
	assert.Len(t, doc.Prompts, 3)
	assert.NotEmpty(t, doc.GeneratedAt)
}

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	out, err := runCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "campaignforge")
	assert.Contains(t, out, "prompts")
}
