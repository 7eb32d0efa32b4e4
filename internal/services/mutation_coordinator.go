package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/poofware/pm-dashboard/internal/api"
	"github.com/poofware/pm-dashboard/internal/dtos"
	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/navigation"
	"github.com/poofware/pm-dashboard/internal/notification"
	"github.com/poofware/pm-dashboard/internal/store"
	"github.com/poofware/pm-dashboard/internal/utils"
)

// Category names one kind of mutation. Each has its own busy flag.
type Category string

const (
	CategoryDeleteProperty Category = "delete_property"
	CategoryUpdateUnit     Category = "update_unit"
	CategoryToggleListing  Category = "toggle_listing"
	CategoryCreateLease    Category = "create_lease"
)

// Notification texts.
const (
	msgPropertyDeleted     = "Property deleted"
	msgPropertyDeleteFail  = "Failed to delete property"
	msgUnitUpdated         = "Unit updated"
	msgUnitUpdateFail      = "Failed to update unit"
	msgUnitListed          = "Unit listed"
	msgUnitUnlisted        = "Unit unlisted"
	msgListingToggleFail   = "Failed to update listing"
	msgLeaseCreated        = "Lease created"
	msgLeaseCreateFail     = "Failed to create lease"
	msgLeaseMissingFields  = "Please provide the lease %s"
	msgMalformedNumbers    = "Please enter a valid number for %s"
	msgUnitNoLongerPresent = "Unit no longer exists; reload and try again"
)

// Store is the part of the EntityStore the coordinator writes through.
type Store interface {
	Snapshot() *store.Snapshot
	Reload(ctx context.Context) (*store.Snapshot, error)
}

// MutationCoordinator runs writes against the API, reloads the whole store
// on success and reports the outcome through the notification slot. The
// busy flag is per category: unrelated mutations may run concurrently.
type MutationCoordinator struct {
	client api.Client
	store  Store
	nav    *navigation.Machine
	notes  *notification.Slot

	mu   sync.Mutex
	busy map[Category]bool
}

func NewMutationCoordinator(
	client api.Client,
	st Store,
	nav *navigation.Machine,
	notes *notification.Slot,
) *MutationCoordinator {
	return &MutationCoordinator{
		client: client,
		store:  st,
		nav:    nav,
		notes:  notes,
		busy:   make(map[Category]bool),
	}
}

// Busy reports the current busy flags.
func (c *MutationCoordinator) Busy() dtos.BusyFlags {
	c.mu.Lock()
	defer c.mu.Unlock()
	return dtos.BusyFlags{
		DeleteProperty: c.busy[CategoryDeleteProperty],
		UpdateUnit:     c.busy[CategoryUpdateUnit],
		ToggleListing:  c.busy[CategoryToggleListing],
		CreateLease:    c.busy[CategoryCreateLease],
	}
}

// IsBusy reports whether a mutation of category cat is in flight.
func (c *MutationCoordinator) IsBusy(cat Category) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy[cat]
}

// ------------------------------------------------------------------
// Operations
// ------------------------------------------------------------------

// DeleteProperty deletes without confirmation. The drawer is closed up
// front when it shows the property, and again after the reload in case it
// was reopened meanwhile.
func (c *MutationCoordinator) DeleteProperty(ctx context.Context, id models.ID) error {
	release, err := c.acquire(CategoryDeleteProperty)
	if err != nil {
		return err
	}
	defer release()

	if c.nav.CloseIfShowing(id) {
		utils.Logger.WithField("property_id", id.String()).Debug("Closed drawer before delete")
	}

	return c.commit(ctx, CategoryDeleteProperty, msgPropertyDeleted, msgPropertyDeleteFail,
		func(ctx context.Context) error {
			return c.client.DeleteProperty(ctx, id)
		},
		func() {
			c.nav.CloseIfShowing(id)
		},
	)
}

// UpdateUnit sends the full unit record with overrides applied.
func (c *MutationCoordinator) UpdateUnit(ctx context.Context, id models.ID, overrides dtos.UnitOverrides) error {
	release, err := c.acquire(CategoryUpdateUnit)
	if err != nil {
		return err
	}
	defer release()

	if err := c.rejectMalformed(overrides.MalformedAmounts()); err != nil {
		return err
	}

	unit, ok := c.store.Snapshot().UnitByID(id)
	if !ok {
		c.notes.Push(notification.KindError, msgUnitNoLongerPresent)
		return fmt.Errorf("%w: %s", utils.ErrUnitNotFound, id)
	}
	return c.writeUnit(ctx, CategoryUpdateUnit, id, BuildUnitPayload(*unit, overrides), msgUnitUpdated, msgUnitUpdateFail)
}

// ToggleListing flips is_listed and sends the full unit record.
func (c *MutationCoordinator) ToggleListing(ctx context.Context, id models.ID) error {
	release, err := c.acquire(CategoryToggleListing)
	if err != nil {
		return err
	}
	defer release()

	unit, ok := c.store.Snapshot().UnitByID(id)
	if !ok {
		c.notes.Push(notification.KindError, msgUnitNoLongerPresent)
		return fmt.Errorf("%w: %s", utils.ErrUnitNotFound, id)
	}

	listed := !unit.IsListed
	success := msgUnitUnlisted
	if listed {
		success = msgUnitListed
	}
	payload := BuildUnitPayload(*unit, dtos.UnitOverrides{IsListed: &listed})
	return c.writeUnit(ctx, CategoryToggleListing, id, payload, success, msgListingToggleFail)
}

// CreateLease checks the required fields locally; a missing unit, tenant or
// date fails without any network call, as does a malformed amount.
func (c *MutationCoordinator) CreateLease(ctx context.Context, req dtos.CreateLeaseRequest) error {
	release, err := c.acquire(CategoryCreateLease)
	if err != nil {
		return err
	}
	defer release()

	req.StartDate = strings.TrimSpace(req.StartDate)
	req.EndDate = strings.TrimSpace(req.EndDate)
	if err := validate.Struct(req); err != nil {
		c.notes.Push(notification.KindValidation, fmt.Sprintf(msgLeaseMissingFields, missingLeaseFields(err)))
		utils.Logger.WithError(err).Warn("Lease form failed validation")
		return fmt.Errorf("%w: %w", utils.ErrValidation, err)
	}
	if err := c.rejectMalformed(req.MalformedAmounts()); err != nil {
		return err
	}

	payload := api.LeasePayload{
		Unit:      req.UnitID,
		Tenant:    req.TenantID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	}
	if req.MonthlyRent != nil {
		payload.MonthlyRent = *req.MonthlyRent
	}
	if req.SecurityDeposit != nil {
		payload.SecurityDeposit = *req.SecurityDeposit
	}
	payload.SecurityDeposit = payload.SecurityDeposit.Filled()
	if req.IsActive != nil {
		payload.IsActive = *req.IsActive
	}
	if !payload.MonthlyRent.Valid {
		var rent models.Amount
		if unit, ok := c.store.Snapshot().UnitByID(req.UnitID); ok {
			rent = unit.RentAmount
		}
		payload.MonthlyRent = rent.Filled()
	}

	return c.commit(ctx, CategoryCreateLease, msgLeaseCreated, msgLeaseCreateFail,
		func(ctx context.Context) error {
			_, err := c.client.CreateLease(ctx, payload)
			return err
		},
		nil,
	)
}

// ------------------------------------------------------------------
// internals
// ------------------------------------------------------------------

func (c *MutationCoordinator) writeUnit(
	ctx context.Context,
	cat Category,
	id models.ID,
	payload api.UnitPayload,
	successMsg, failMsg string,
) error {
	if err := validate.Struct(payload); err != nil {
		c.notes.Push(notification.KindValidation, failMsg)
		return fmt.Errorf("%w: %w", utils.ErrValidation, err)
	}
	return c.commit(ctx, cat, successMsg, failMsg,
		func(ctx context.Context) error {
			_, err := c.client.UpdateUnit(ctx, id, payload)
			return err
		},
		nil,
	)
}

// rejectMalformed fails with a validation notification when any supplied
// number did not parse.
func (c *MutationCoordinator) rejectMalformed(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	joined := strings.Join(fields, ", ")
	c.notes.Push(notification.KindValidation, fmt.Sprintf(msgMalformedNumbers, joined))
	utils.Logger.WithField("fields", joined).Warn("Rejected malformed numbers")
	return fmt.Errorf("%w: malformed %s", utils.ErrValidation, joined)
}

var leaseFieldLabels = map[string]string{
	"UnitID":    "unit",
	"TenantID":  "tenant",
	"StartDate": "start date",
	"EndDate":   "end date",
}

// missingLeaseFields lists the failed fields in form order, e.g.
// "tenant and end date".
func missingLeaseFields(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "details"
	}
	labels := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if label, ok := leaseFieldLabels[fe.StructField()]; ok {
			labels = append(labels, label)
		}
	}
	switch len(labels) {
	case 0:
		return "details"
	case 1:
		return labels[0]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + " and " + labels[len(labels)-1]
	}
}

// acquire sets the busy flag of cat; the returned func clears it.
func (c *MutationCoordinator) acquire(cat Category) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy[cat] {
		return nil, fmt.Errorf("%w: %s", utils.ErrOperationInProgress, cat)
	}
	c.busy[cat] = true
	return func() {
		c.mu.Lock()
		c.busy[cat] = false
		c.mu.Unlock()
	}, nil
}

// commit runs write, then a full reload. The store only changes through
// the reload, so a failure at either step leaves it untouched.
func (c *MutationCoordinator) commit(
	ctx context.Context,
	cat Category,
	successMsg, failMsg string,
	write func(ctx context.Context) error,
	afterReload func(),
) error {
	log := utils.Logger.WithField("operation", string(cat))

	if err := write(ctx); err != nil {
		log.WithError(err).Error("Mutation failed")
		c.notes.Push(notification.KindError, failMsg)
		return fmt.Errorf("%w: %s: %w", utils.ErrMutationFailed, cat, err)
	}

	snap, err := c.store.Reload(ctx)
	if err != nil {
		log.WithError(err).Error("Reload after mutation failed")
		c.notes.Push(notification.KindError, failMsg)
		return fmt.Errorf("%w: %s: %w", utils.ErrMutationFailed, cat, err)
	}

	if afterReload != nil {
		afterReload()
	}
	c.notes.Push(notification.KindSuccess, successMsg)
	log.WithFields(logrus.Fields{"snapshot_version": snap.Version}).Info("Mutation applied")
	return nil
}
