// Package tui implements the interactive init wizard: a sequence of huh
// forms that collect every choice needed to write the per-environment
// configuration files.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"scaletrailhq/scaletrail/internal/catalog"
	"scaletrailhq/scaletrail/internal/domain"
	"scaletrailhq/scaletrail/internal/dnsplan"
	"scaletrailhq/scaletrail/internal/envfile"
	"scaletrailhq/scaletrail/internal/regions"
	"scaletrailhq/scaletrail/internal/services/auth"
	"scaletrailhq/scaletrail/internal/tui/styles"
	"scaletrailhq/scaletrail/internal/util"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrAborted is returned when the user cancels the wizard.
var ErrAborted = domain.ErrAborted

// Environment choices offered by default; users can still pass custom names
// via --environments.
var envChoices = []string{"dev", "staging", "prod"}

// defaultClasses limits the instance prompt to general-purpose plans.
var defaultClasses = []string{"nanode", "standard", "dedicated", "premium"}

// defaultVendors is the OS vendor allow-list for the image prompt.
var defaultVendors = []string{
	"AlmaLinux", "Alpine", "Arch", "CentOS", "Debian", "Fedora",
	"Kali", "Gentoo", "OpenSuse", "Rocky Linux", "Slackware", "Ubuntu",
}

// Secret keys captured into the .env file.
const (
	KeyLinodeAPIKey        = "LINODE_API_KEY"
	KeyCloudflareAccountID = "CLOUDFLARE_ACCOUNT_ID"
	KeyCloudflareAPIKey    = "CLOUDFLARE_API_KEY"
	KeyStripeAPIKey        = "STRIPE_API_KEY"
	KeySendgridAPIKey      = "SENDGRID_API_KEY"
)

// CatalogClient is the slice of the Linode client the wizard needs.
type CatalogClient interface {
	ListTypes(ctx context.Context) (catalog.TypesResponse, error)
	ListImages(ctx context.Context) (catalog.ImagesResponse, error)
}

// DNSClient is the slice of the Cloudflare client the wizard needs.
type DNSClient interface {
	GetZoneID(ctx context.Context, domainName string) (string, error)
	ListRecords(ctx context.Context, zoneID string) ([]domain.DNSRecord, error)
}

// Options prefills wizard answers from command-line flags. Empty fields are
// prompted for; populated fields skip their prompt.
type Options struct {
	ProjectName    string
	Continent      string
	Region         string
	Environments   []string
	Domain         string
	BackupsEnabled bool
	BackupsSet     bool // true when --backups was passed explicitly
	Tags           string
}

// Credentials holds the captured secret values plus which ones were saved.
type Credentials struct {
	LinodeAPIKey        string
	CloudflareAccountID string
	CloudflareAPIKey    string
	StripeAPIKey        string
	SendgridAPIKey      string
}

// Result is everything init needs to write the configuration files.
type Result struct {
	ProjectName    string
	Region         string
	Environments   []string
	InstanceByEnv  map[string]string
	ImageByEnv     map[string]string
	Domain         string
	BackupsEnabled bool
	Tags           []string
	Credentials    Credentials
}

// Wizard walks the user through the init flow as an explicit step sequence.
// Each step is a method; Run executes them in order and stops at the first
// abort or failure.
type Wizard struct {
	accessible bool
	out        io.Writer
	errOut     io.Writer

	secrets *envfile.File
	tokens  auth.Store

	newCatalogClient func(token string) CatalogClient
	newDNSClient     func(token string) DNSClient

	opts Options
}

// NewWizard constructs a wizard. Output sinks and stores are passed in
// explicitly so tests can capture output and fake credential storage.
func NewWizard(out, errOut io.Writer, secrets *envfile.File, tokens auth.Store,
	newCatalogClient func(token string) CatalogClient,
	newDNSClient func(token string) DNSClient,
	opts Options) *Wizard {
	return &Wizard{
		accessible:       os.Getenv("ACCESSIBLE") != "",
		out:              out,
		errOut:           errOut,
		secrets:          secrets,
		tokens:           tokens,
		newCatalogClient: newCatalogClient,
		newDNSClient:     newDNSClient,
		opts:             opts,
	}
}

// Run executes the wizard steps in order. It performs no durable writes
// beyond the secrets file; config files are written by the caller once the
// whole flow has completed.
func (w *Wizard) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		InstanceByEnv: make(map[string]string),
		ImageByEnv:    make(map[string]string),
	}

	if err := w.stepProject(result); err != nil {
		return nil, err
	}
	if err := w.stepCredentials(result); err != nil {
		return nil, err
	}
	if err := w.stepRegion(result); err != nil {
		return nil, err
	}
	if err := w.stepEnvironments(result); err != nil {
		return nil, err
	}

	types, images, err := w.fetchCatalogs(ctx, result.Credentials.LinodeAPIKey)
	if err != nil {
		return nil, err
	}

	if err := w.stepSelections(result, types, images); err != nil {
		return nil, err
	}
	if err := w.stepDomain(ctx, result); err != nil {
		return nil, err
	}
	if err := w.stepExtras(result); err != nil {
		return nil, err
	}

	return result, nil
}

// --- Steps ---

func (w *Wizard) stepProject(result *Result) error {
	result.ProjectName = strings.TrimSpace(w.opts.ProjectName)
	if result.ProjectName != "" {
		return util.ValidateProjectName(result.ProjectName)
	}

	field := huh.NewInput().
		Title("Project name").
		Value(&result.ProjectName).
		Validate(func(value string) error {
			return util.ValidateProjectName(strings.TrimSpace(value))
		})

	if err := w.runForm(huh.NewGroup(field)); err != nil {
		return err
	}
	result.ProjectName = strings.TrimSpace(result.ProjectName)
	return nil
}

// stepCredentials captures each secret: the .env file wins, then the OS
// keychain for provider tokens, then a hidden prompt. Prompted values are
// appended to the .env file so later tooling can consume them.
func (w *Wizard) stepCredentials(result *Result) error {
	creds := &result.Credentials

	capture := []struct {
		key     string
		title   string
		keyring string // keyring provider name, "" when keychain is not consulted
		dest    *string
	}{
		{KeyLinodeAPIKey, "Linode API key", "linode", &creds.LinodeAPIKey},
		{KeyCloudflareAccountID, "Cloudflare account ID", "", &creds.CloudflareAccountID},
		{KeyCloudflareAPIKey, "Cloudflare API key", "cloudflare", &creds.CloudflareAPIKey},
		{KeyStripeAPIKey, "Stripe API key", "", &creds.StripeAPIKey},
		{KeySendgridAPIKey, "SendGrid API key", "", &creds.SendgridAPIKey},
	}

	for _, c := range capture {
		value, err := w.secrets.Get(c.key)
		if err != nil {
			return err
		}
		if strings.TrimSpace(value) != "" {
			*c.dest = strings.TrimSpace(value)
			continue
		}

		if c.keyring != "" && w.tokens != nil {
			token, err := w.tokens.GetToken(c.keyring)
			if err == nil && token != "" {
				*c.dest = token
				if err := w.secrets.Set(c.key, token); err != nil {
					return err
				}
				continue
			}
			if err != nil && !errors.Is(err, auth.ErrTokenNotFound) {
				return err
			}
		}

		var entered string
		field := huh.NewInput().
			Title(c.title).
			EchoMode(huh.EchoModePassword).
			Value(&entered).
			Validate(huh.ValidateNotEmpty())

		if err := w.runForm(huh.NewGroup(field)); err != nil {
			return err
		}

		entered = strings.TrimSpace(entered)
		*c.dest = entered
		if err := w.secrets.Set(c.key, entered); err != nil {
			return err
		}
	}

	return nil
}

func (w *Wizard) stepRegion(result *Result) error {
	if w.opts.Region != "" {
		result.Region = w.opts.Region
		return nil
	}

	continent := regions.Normalize(w.opts.Continent)
	if continent == "" || len(regions.For(continent)) == 0 {
		field := huh.NewSelect[string]().
			Title("Select a continent (or show all regions)").
			Options(huh.NewOptions(regions.Continents...)...).
			Value(&continent)

		if err := w.runForm(huh.NewGroup(field)); err != nil {
			return err
		}
	}

	regionChoices := regions.For(continent)
	if len(regionChoices) == 0 {
		return fmt.Errorf("no regions known for continent %q: %w", continent, domain.ErrNoSelection)
	}

	title := "Select a Linode region"
	if continent != regions.ShowAll {
		title += " in " + continent
	}

	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(regionChoices...)...).
		Value(&result.Region).
		Height(selectHeight(len(regionChoices), 12)).
		Validate(huh.ValidateNotEmpty())

	if err := w.runForm(huh.NewGroup(field)); err != nil {
		return err
	}

	fmt.Fprintf(w.out, "Selected region: %s\n", styles.AccentText.Render(result.Region))
	return nil
}

func (w *Wizard) stepEnvironments(result *Result) error {
	if len(w.opts.Environments) > 0 {
		result.Environments = w.opts.Environments
		return nil
	}

	field := huh.NewMultiSelect[string]().
		Title("Which environments do you want to set up?").
		Description("Use the space bar to select, enter to confirm.").
		Options(huh.NewOptions(envChoices...)...).
		Value(&result.Environments)

	if err := w.runForm(huh.NewGroup(field)); err != nil {
		return err
	}

	if len(result.Environments) == 0 {
		return fmt.Errorf("no environments selected: %w", domain.ErrNoSelection)
	}
	return nil
}

// fetchCatalogs retrieves the instance type and image listings under a
// single spinner. The two calls are independent reads and run concurrently.
func (w *Wizard) fetchCatalogs(ctx context.Context, linodeToken string) (catalog.TypesResponse, catalog.ImagesResponse, error) {
	client := w.newCatalogClient(linodeToken)

	var types catalog.TypesResponse
	var images catalog.ImagesResponse

	fetchErr := spinner.New().
		Title("Fetching instance types and images...").
		Accessible(w.accessible).
		Output(w.errOut).
		ActionWithErr(func(ctx context.Context) error {
			return fetchCatalogData(ctx, client, &types, &images)
		}).
		Run()
	if fetchErr != nil {
		if errors.Is(fetchErr, huh.ErrUserAborted) || errors.Is(fetchErr, context.Canceled) {
			return catalog.TypesResponse{}, catalog.ImagesResponse{}, ErrAborted
		}
		return catalog.TypesResponse{}, catalog.ImagesResponse{}, fetchErr
	}

	return types, images, nil
}

// stepSelections prompts for an instance type and OS image per environment.
// Instances are priced for the chosen region and ranked by monthly price;
// images pass the default filter plus the vendor allow-list.
func (w *Wizard) stepSelections(result *Result, types catalog.TypesResponse, images catalog.ImagesResponse) error {
	instances := catalog.FilterInstances(types, result.Region, defaultClasses)
	if len(instances) == 0 {
		return fmt.Errorf("no instance types available: %w", domain.ErrNoSelection)
	}
	ranked := catalog.SortInstancesByMonthlyPrice(instances)

	imageFilter := catalog.DefaultImageFilter()
	imageFilter.IncludeVendors = defaultVendors
	oses := catalog.FilterImages(images, result.Region, imageFilter)
	if len(oses) == 0 {
		return fmt.Errorf("no operating systems available for region %q: %w", result.Region, domain.ErrNoSelection)
	}

	instanceOpts := buildInstanceOptions(ranked)
	imageOpts := buildImageOptions(oses)

	for _, env := range result.Environments {
		fmt.Fprintf(w.out, "\n%s %s\n", styles.Subtitle.Render("Environment:"), styles.EnvironmentStyle(env).Render(env))

		var instanceID string
		instanceField := huh.NewSelect[string]().
			Title(fmt.Sprintf("Select a Linode plan for %q (region: %s)", env, result.Region)).
			Description(instanceHeader()).
			Options(instanceOpts...).
			Value(&instanceID).
			Height(selectHeight(len(instanceOpts), 14)).
			Validate(huh.ValidateNotEmpty())

		var imageID string
		imageField := huh.NewSelect[string]().
			Title(fmt.Sprintf("Select an operating system for %q", env)).
			Options(imageOpts...).
			Value(&imageID).
			Height(selectHeight(len(imageOpts), 14)).
			Validate(huh.ValidateNotEmpty())

		if err := w.runForm(huh.NewGroup(instanceField), huh.NewGroup(imageField)); err != nil {
			return err
		}

		result.InstanceByEnv[env] = instanceID
		result.ImageByEnv[env] = imageID

		if inst, ok := findInstance(ranked, instanceID); ok {
			fmt.Fprintf(w.out, "→ %s: %s (%s)\n", env, styles.Title.Render(inst.Label), inst.ID)
		}
	}

	return nil
}

// stepDomain collects the root domain, fetches the existing DNS snapshot,
// and announces which planned hostnames are free or already taken. A failed
// DNS fetch degrades to "no existing records" with a warning; it does not
// block initialization because no records are ever created here.
func (w *Wizard) stepDomain(ctx context.Context, result *Result) error {
	result.Domain = strings.TrimSpace(w.opts.Domain)
	if result.Domain == "" {
		field := huh.NewInput().
			Title("Domain to configure (e.g., example.com)").
			Value(&result.Domain).
			Validate(func(value string) error {
				return util.ValidateDomain(value)
			})

		if err := w.runForm(huh.NewGroup(field)); err != nil {
			return err
		}
		result.Domain = strings.TrimSpace(result.Domain)
	} else if err := util.ValidateDomain(result.Domain); err != nil {
		return err
	}

	records, err := w.fetchDNSRecords(ctx, result.Credentials.CloudflareAPIKey, result.Domain)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			return err
		}
		fmt.Fprintln(w.errOut, styles.Warning(fmt.Sprintf("Could not fetch DNS records for %s: %v", result.Domain, err)))
		records = nil
	}

	for _, env := range result.Environments {
		w.announceAvailability(records, env, result.Domain)
	}

	return nil
}

func (w *Wizard) fetchDNSRecords(ctx context.Context, token, domainName string) ([]domain.DNSRecord, error) {
	client := w.newDNSClient(token)

	var records []domain.DNSRecord
	fetchErr := spinner.New().
		Title("Checking DNS records for " + domainName + "...").
		Accessible(w.accessible).
		Output(w.errOut).
		ActionWithErr(func(ctx context.Context) error {
			zoneID, err := client.GetZoneID(ctx, domainName)
			if err != nil {
				return err
			}
			records, err = client.ListRecords(ctx, zoneID)
			return err
		}).
		Run()
	if fetchErr != nil {
		if errors.Is(fetchErr, huh.ErrUserAborted) || errors.Is(fetchErr, context.Canceled) {
			return nil, ErrAborted
		}
		return nil, fetchErr
	}

	return records, nil
}

// announceAvailability prints, per environment, whether each hostname the
// plan would claim is free. Production claims the root, www, and api hosts;
// other environments claim {env} and {env}-api.
func (w *Wizard) announceAvailability(records []domain.DNSRecord, env, root string) {
	envLabel := styles.EnvironmentStyle(env).Render(env)

	if isProductionEnv(env) {
		if dnsplan.RootDomainIsAvailable(records, root) {
			fmt.Fprintf(w.out, "The root domain %s is available! It will host the front end for the %s environment.\n",
				styles.AccentText.Render(root), envLabel)
		} else {
			fmt.Fprintln(w.out, styles.Warning(fmt.Sprintf("The root domain %s has an existing A or CNAME record! It will be overwritten!", root)))
		}

		for _, sub := range []string{"www", "api"} {
			host := sub + "." + root
			if dnsplan.IsSubdomainAvailable(records, sub, root) {
				fmt.Fprintf(w.out, "%s is available!\n", styles.AccentText.Render(host))
			} else {
				fmt.Fprintln(w.out, styles.Warning(fmt.Sprintf("%s has an existing A or CNAME record! It will be overwritten!", host)))
			}
		}
		return
	}

	for _, sub := range []string{env, env + "-api"} {
		host := sub + "." + root
		if dnsplan.IsSubdomainAvailable(records, sub, root) {
			fmt.Fprintf(w.out, "%s is available! It will be used by the %s environment.\n",
				styles.AccentText.Render(host), envLabel)
		} else {
			fmt.Fprintln(w.out, styles.Warning(fmt.Sprintf("%s is already taken!", host)))
		}
	}
}

func (w *Wizard) stepExtras(result *Result) error {
	result.BackupsEnabled = w.opts.BackupsEnabled
	result.Tags = util.SplitTags(w.opts.Tags)

	var groups []*huh.Group

	if !w.opts.BackupsSet {
		backupsField := huh.NewConfirm().
			Title("Enable backups for the instances?").
			Value(&result.BackupsEnabled)
		groups = append(groups, huh.NewGroup(backupsField))
	}

	var tags string
	if w.opts.Tags == "" {
		tagsField := huh.NewInput().
			Title("Tags (comma-separated, optional)").
			Value(&tags)
		groups = append(groups, huh.NewGroup(tagsField))
	}

	if len(groups) == 0 {
		return nil
	}

	if err := w.runForm(groups...); err != nil {
		return err
	}

	if tags != "" {
		result.Tags = util.SplitTags(tags)
	}
	return nil
}

// --- Helpers ---

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func (w *Wizard) runForm(groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(w.accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func isProductionEnv(env string) bool {
	switch strings.ToLower(env) {
	case "prod", "production":
		return true
	}
	return false
}

func findInstance(instances []catalog.NormalizedInstance, id string) (catalog.NormalizedInstance, bool) {
	for _, inst := range instances {
		if inst.ID == id {
			return inst, true
		}
	}
	return catalog.NormalizedInstance{}, false
}
