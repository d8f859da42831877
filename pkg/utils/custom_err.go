package utils

import "errors"

var (
	// Validation
	ErrInvalidTimeFormat       = errors.New("invalid scheduled time format")
	ErrInvalidDayOfWeek        = errors.New("day of week must be between 1 (Monday) and 7 (Sunday)")
	ErrScheduleOverlap         = errors.New("schedule overlaps an existing delivery window")
	ErrInvalidPaymentMode      = errors.New("unrecognized payment mode")
	ErrInvalidPaymentDueDay    = errors.New("payment due day must be between 1 and 31")
	ErrInvalidCycleRange       = errors.New("cycle end must not be before cycle start")
	ErrComodatoAlreadyReturned = errors.New("comodato is already returned")
	ErrInvalidInput            = errors.New("invalid input")

	// Not found
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrScheduleNotFound     = errors.New("delivery schedule not found")
	ErrComodatoNotFound     = errors.New("comodato not found")
	ErrPlanNotFound         = errors.New("subscription plan not found")

	// Configuration. Billing never falls back to summing product prices;
	// a plan without a price is a hard stop.
	ErrPlanPriceNotSet = errors.New("plan must have a price")

	// Infrastructure
	ErrDatabaseError = errors.New("database error")
)
