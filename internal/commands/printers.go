package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/poofware/pm-dashboard/internal/dtos"
	"github.com/poofware/pm-dashboard/internal/notification"
	"github.com/poofware/pm-dashboard/internal/portfolio"
	"github.com/poofware/pm-dashboard/internal/utils"
)

var (
	bold    = color.New(color.Bold).SprintFunc()
	title   = color.New(color.Bold, color.Underline).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
	success = color.New(color.FgGreen).SprintFunc()
	failure = color.New(color.FgRed, color.Bold).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
)

func printBanner(w io.Writer, view dtos.PortfolioView) {
	if view.LoadError != "" {
		_, _ = fmt.Fprintln(w, failure(view.LoadError))
	}
}

func printNotification(w io.Writer, n *notification.Notification) {
	if n == nil {
		return
	}
	switch n.Kind {
	case notification.KindSuccess:
		_, _ = fmt.Fprintln(w, success(n.Message))
	case notification.KindValidation:
		_, _ = fmt.Fprintln(w, warning(n.Message))
	default:
		_, _ = fmt.Fprintln(w, failure(n.Message))
	}
}

func printStats(w io.Writer, label string, st portfolio.Stats) {
	_, _ = fmt.Fprintf(w, "%s  %d units, %d occupied, %d vacant, %d%% occupancy, $%s/mo\n",
		bold(label), st.Total, st.Occupied, st.Vacant, st.OccupancyPct, st.MonthlyRevenue.StringFixed(2))
}

func printPortfolio(w io.Writer, view dtos.PortfolioView) {
	printBanner(w, view)
	printStats(w, "Portfolio", view.Stats)
	_, _ = fmt.Fprintln(w)

	if len(view.Properties) == 0 {
		_, _ = fmt.Fprintln(w, faint(" no properties"))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.AddRow(bold("ID"), bold("Name"), bold("Type"), bold("Address"), bold("Units"), bold("Occupancy"), bold("Revenue"))
	for _, p := range view.Properties {
		tbl.AddRow(
			p.ID.String(),
			p.Name,
			p.PropertyType,
			p.Address,
			strconv.Itoa(p.Stats.Total),
			fmt.Sprintf("%d/%d (%d%%)", p.Stats.Occupied, p.Stats.Total, p.Stats.OccupancyPct),
			"$"+p.Stats.MonthlyRevenue.StringFixed(2),
		)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printDrawer(w io.Writer, d dtos.Drawer) {
	if d.Property == nil {
		_, _ = fmt.Fprintln(w, faint(" property not found"))
		return
	}

	_, _ = fmt.Fprintln(w, title(d.Property.Name))
	_, _ = fmt.Fprintln(w, faint(d.Property.Address+" · "+d.Property.PropertyType))
	printStats(w, "Occupancy", d.Property.Stats)
	_, _ = fmt.Fprintln(w)

	if d.UnitID != nil {
		if d.Unit == nil {
			_, _ = fmt.Fprintln(w, faint(" unit not found"))
			return
		}
		printUnitDetail(w, d.Unit)
		return
	}

	if len(d.Units) == 0 {
		_, _ = fmt.Fprintln(w, faint(" no units"))
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Unit"), bold("Bd/Ba"), bold("Sq Ft"), bold("Rent"), bold("Status"), bold("Listed"), bold("Tenant"))
	for _, u := range d.Units {
		tbl.AddRow(
			u.ID.String(),
			u.UnitNumber,
			u.Bedrooms.OrZero().String()+"/"+u.Bathrooms.OrZero().String(),
			u.SquareFeet.OrZero().String(),
			"$"+u.RentAmount.OrZero().StringFixed(2),
			occupancyLabel(u.Occupied),
			yesNo(u.IsListed),
			u.TenantName,
		)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printUnitDetail(w io.Writer, u *dtos.UnitDetail) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Unit"), u.UnitNumber)
	tbl.AddRow(bold("Status"), occupancyLabel(u.Occupied))
	tbl.AddRow(bold("Rent"), "$"+u.RentAmount.OrZero().StringFixed(2))
	tbl.AddRow(bold("Available"), yesNo(u.IsAvailable))
	tbl.AddRow(bold("Listed"), yesNo(u.IsListed))
	if u.ListingTitle != "" {
		tbl.AddRow(bold("Listing"), u.ListingTitle)
	}
	if from := utils.Val(u.ListingAvailableDate); from != "" {
		tbl.AddRow(bold("Available from"), from)
	}
	if len(u.ListingAmenities) > 0 {
		tbl.AddRow(bold("Amenities"), fmt.Sprint(u.ListingAmenities))
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w)

	if u.CurrentLease == nil {
		_, _ = fmt.Fprintln(w, faint(" no current lease"))
		return
	}
	l := u.CurrentLease
	lt := uitable.New()
	lt.Separator = "  "
	lt.AddRow(bold("Lease"), l.ID.String())
	lt.AddRow(bold("Tenant"), l.TenantName)
	lt.AddRow(bold("Term"), l.StartDate+" → "+l.EndDate)
	lt.AddRow(bold("Monthly rent"), "$"+l.MonthlyRent.OrZero().StringFixed(2))
	lt.AddRow(bold("Deposit"), "$"+l.SecurityDeposit.OrZero().StringFixed(2))
	_, _ = fmt.Fprintln(w, lt)
}

func occupancyLabel(occupied bool) string {
	if occupied {
		return "Occupied"
	}
	return "Vacant"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
