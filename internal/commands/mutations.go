package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poofware/pm-dashboard/internal/app"
	"github.com/poofware/pm-dashboard/internal/dtos"
	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/utils"
)

// runMutation loads the portfolio, runs fn and prints the resulting
// notification. The mutation error is returned so the exit code reflects it.
func runMutation(cmd *cobra.Command, factory AppFactory, fn func(ctx context.Context, a *app.App) error) error {
	a, err := loadApp(cmd.Context(), factory)
	if err != nil {
		return err
	}
	defer a.Close()

	mErr := fn(cmd.Context(), a)
	if n, ok := a.DashboardService.Notification(); ok {
		printNotification(out(cmd), &n)
	}
	return mErr
}

func addDeleteProperty(topLevel *cobra.Command, factory AppFactory) {
	cmd := &cobra.Command{
		Use:     "delete-property <property-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a property. There is no confirmation.",
		Example: "pmdash delete-property 3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg("property id", args[0])
			if err != nil {
				return err
			}
			return runMutation(cmd, factory, func(ctx context.Context, a *app.App) error {
				return a.DashboardService.Mutations.DeleteProperty(ctx, id)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addToggleListing(topLevel *cobra.Command, factory AppFactory) {
	cmd := &cobra.Command{
		Use:     "toggle-listing <unit-id>",
		Short:   "List or unlist a unit.",
		Example: "pmdash toggle-listing 12",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg("unit id", args[0])
			if err != nil {
				return err
			}
			return runMutation(cmd, factory, func(ctx context.Context, a *app.App) error {
				return a.DashboardService.Mutations.ToggleListing(ctx, id)
			})
		},
	}

	topLevel.AddCommand(cmd)
}

type unitOptions struct {
	UnitNumber   string
	Rent         string
	Bedrooms     string
	Bathrooms    string
	SquareFeet   string
	Available    bool
	Listed       bool
	Title        string
	Description  string
	Amenities    []string
	LeaseTerm    string
	AvailableOn  string
	Deposit      string
	ContactEmail string
	ContactPhone string
}

func (o *unitOptions) AddFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.UnitNumber, "number", "", "Unit number.")
	f.StringVar(&o.Rent, "rent", "", "Monthly rent.")
	f.StringVar(&o.Bedrooms, "bedrooms", "", "Bedrooms.")
	f.StringVar(&o.Bathrooms, "bathrooms", "", "Bathrooms, e.g. 1.5.")
	f.StringVar(&o.SquareFeet, "sqft", "", "Square feet.")
	f.BoolVar(&o.Available, "available", false, "Whether the unit is available.")
	f.BoolVar(&o.Listed, "listed", false, "Whether the unit is listed.")
	f.StringVar(&o.Title, "title", "", "Listing title.")
	f.StringVar(&o.Description, "description", "", "Listing description.")
	f.StringSliceVar(&o.Amenities, "amenity", nil, "Listing amenity; repeat or comma-separate. Replaces the current set.")
	f.StringVar(&o.LeaseTerm, "lease-term", "", "Listing lease term.")
	f.StringVar(&o.AvailableOn, "available-date", "", "Listing available date, YYYY-MM-DD. Empty clears it.")
	f.StringVar(&o.Deposit, "deposit", "", "Listing deposit.")
	f.StringVar(&o.ContactEmail, "contact-email", "", "Listing contact email.")
	f.StringVar(&o.ContactPhone, "contact-phone", "", "Listing contact phone.")
}

// Overrides returns only the fields whose flags were set.
func (o *unitOptions) Overrides(cmd *cobra.Command) (dtos.UnitOverrides, error) {
	f := cmd.Flags()
	var ov dtos.UnitOverrides

	str := func(name, val string) *string {
		if !f.Changed(name) {
			return nil
		}
		return utils.Ptr(val)
	}
	amount := func(name, val string) (*models.Amount, error) {
		if !f.Changed(name) {
			return nil, nil
		}
		a, ok := models.ParseAmount(val)
		if !ok {
			return nil, invalidFlag(name, val)
		}
		return &a, nil
	}

	var err error
	if ov.RentAmount, err = amount("rent", o.Rent); err != nil {
		return ov, err
	}
	if ov.Bedrooms, err = amount("bedrooms", o.Bedrooms); err != nil {
		return ov, err
	}
	if ov.Bathrooms, err = amount("bathrooms", o.Bathrooms); err != nil {
		return ov, err
	}
	if ov.SquareFeet, err = amount("sqft", o.SquareFeet); err != nil {
		return ov, err
	}
	if ov.ListingDeposit, err = amount("deposit", o.Deposit); err != nil {
		return ov, err
	}

	ov.UnitNumber = str("number", o.UnitNumber)
	ov.ListingTitle = str("title", o.Title)
	ov.ListingDescription = str("description", o.Description)
	ov.ListingLeaseTerm = str("lease-term", o.LeaseTerm)
	ov.ListingContactEmail = str("contact-email", o.ContactEmail)
	ov.ListingContactPhone = str("contact-phone", o.ContactPhone)

	if f.Changed("available-date") {
		ov.ListingAvailableDate = models.ClearedString()
		if d := strings.TrimSpace(o.AvailableOn); d != "" {
			ov.ListingAvailableDate = models.SetString(d)
		}
	}
	if f.Changed("available") {
		ov.IsAvailable = utils.Ptr(o.Available)
	}
	if f.Changed("listed") {
		ov.IsListed = utils.Ptr(o.Listed)
	}
	if f.Changed("amenity") {
		ov.ListingAmenities = utils.Ptr(append([]string(nil), o.Amenities...))
	}
	return ov, nil
}

func addUpdateUnit(topLevel *cobra.Command, factory AppFactory) {
	uo := &unitOptions{}

	cmd := &cobra.Command{
		Use:   "update-unit <unit-id>",
		Short: "Edit a unit. Unset flags keep their current values.",
		Example: `
pmdash update-unit 12 --rent 1350
pmdash update-unit 12 --available=false
pmdash update-unit 12 --available-date ""
pmdash update-unit 12 --title "Sunny 2BR" --amenity parking --amenity laundry
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg("unit id", args[0])
			if err != nil {
				return err
			}
			overrides, err := uo.Overrides(cmd)
			if err != nil {
				return err
			}
			return runMutation(cmd, factory, func(ctx context.Context, a *app.App) error {
				return a.DashboardService.Mutations.UpdateUnit(ctx, id, overrides)
			})
		},
	}
	uo.AddFlags(cmd)

	topLevel.AddCommand(cmd)
}

type leaseOptions struct {
	UnitID   string
	TenantID string
	Start    string
	End      string
	Rent     string
	Deposit  string
	Inactive bool
}

func (o *leaseOptions) AddFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.UnitID, "unit", "", "Unit id.")
	f.StringVar(&o.TenantID, "tenant", "", "Tenant id.")
	f.StringVar(&o.Start, "start", "", "Start date, YYYY-MM-DD.")
	f.StringVar(&o.End, "end", "", "End date, YYYY-MM-DD.")
	f.StringVar(&o.Rent, "rent", "", "Monthly rent. Defaults to the unit's rent.")
	f.StringVar(&o.Deposit, "deposit", "", "Security deposit. Defaults to 0.")
	f.BoolVar(&o.Inactive, "inactive", false, "Create the lease as inactive.")
}

// Request builds the lease form. Missing tenant or dates are left empty so
// the coordinator reports them as a validation notification.
func (o *leaseOptions) Request() (dtos.CreateLeaseRequest, error) {
	unitID, err := parseIDArg("unit id", o.UnitID)
	if err != nil {
		return dtos.CreateLeaseRequest{}, err
	}
	req := dtos.CreateLeaseRequest{
		UnitID:    unitID,
		StartDate: o.Start,
		EndDate:   o.End,
	}
	if o.TenantID != "" {
		if req.TenantID, err = parseIDArg("tenant id", o.TenantID); err != nil {
			return req, err
		}
	}
	if o.Rent != "" {
		a, ok := models.ParseAmount(o.Rent)
		if !ok {
			return req, invalidFlag("rent", o.Rent)
		}
		req.MonthlyRent = &a
	}
	if o.Deposit != "" {
		a, ok := models.ParseAmount(o.Deposit)
		if !ok {
			return req, invalidFlag("deposit", o.Deposit)
		}
		req.SecurityDeposit = &a
	}
	req.IsActive = utils.Ptr(!o.Inactive)
	return req, nil
}

func addCreateLease(topLevel *cobra.Command, factory AppFactory) {
	lo := &leaseOptions{}

	cmd := &cobra.Command{
		Use:   "create-lease",
		Short: "Create a lease on a unit.",
		Example: `
pmdash create-lease --unit 12 --tenant 502 --start 2025-01-01 --end 2025-12-31
pmdash create-lease --unit 12 --tenant 502 --start 2025-01-01 --end 2025-12-31 --rent 1250 --deposit 500
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := lo.Request()
			if err != nil {
				return err
			}
			return runMutation(cmd, factory, func(ctx context.Context, a *app.App) error {
				return a.DashboardService.Mutations.CreateLease(ctx, req)
			})
		},
	}
	lo.AddFlags(cmd)

	topLevel.AddCommand(cmd)
}

func invalidFlag(flag, value string) error {
	return fmt.Errorf("invalid --%s value %q", flag, value)
}
