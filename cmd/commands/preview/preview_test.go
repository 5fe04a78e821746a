package preview

import (
	"bytes"
	"strings"
	"testing"

	"scaletrailhq/scaletrail/internal/config"
)

func writeConfig(t *testing.T, env, root string) {
	t.Helper()
	cfg := &config.EnvironmentConfig{
		Project:     config.Project{Name: "acme", Initialized: true},
		Environment: config.Environment{Name: env},
		Linode: config.Linode{
			Region:       "us-east",
			InstanceType: "g6-nanode-1",
			Image:        "linode/ubuntu24.04",
			Tags:         []string{"acme"},
		},
		Domain: config.Domain{Root: root},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to write %s config: %v", env, err)
	}
}

func runCommand(t *testing.T) (string, string, error) {
	t.Helper()
	cmd := NewCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPreview(t *testing.T) {
	config.SetDir(t.TempDir())
	t.Cleanup(config.ResetDir)

	writeConfig(t, "prod", "example.com")
	writeConfig(t, "staging", "example.com")

	out, _, err := runCommand(t)
	if err != nil {
		t.Fatalf("preview returned error: %v", err)
	}

	for _, want := range []string{
		"acme",
		"us-east",
		"g6-nanode-1",
		"linode/ubuntu24.04",
		// Production plan: api A record plus www CNAME.
		"api.example.com",
		"www.example.com",
		// Staging plan.
		"staging-api.example.com",
		"auto",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Environments render in name order.
	if strings.Index(out, "prod") > strings.Index(out, "staging-api") {
		t.Errorf("expected prod before staging:\n%s", out)
	}
}

func TestPreview_NoDomainSkipsRecords(t *testing.T) {
	config.SetDir(t.TempDir())
	t.Cleanup(config.ResetDir)

	writeConfig(t, "dev", "")

	out, _, err := runCommand(t)
	if err != nil {
		t.Fatalf("preview returned error: %v", err)
	}
	if strings.Contains(out, "Planned DNS records") {
		t.Errorf("expected no DNS section without a domain:\n%s", out)
	}
}

func TestPreview_MissingConfigDir(t *testing.T) {
	config.SetDir(t.TempDir() + "/does-not-exist")
	t.Cleanup(config.ResetDir)

	_, errOut, err := runCommand(t)
	if err == nil {
		t.Fatal("expected error for missing config directory")
	}
	if !strings.Contains(errOut, "run 'scaletrail init' first") {
		t.Errorf("expected init hint on stderr, got:\n%s", errOut)
	}
}
