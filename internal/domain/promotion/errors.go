package promotion

import "errors"

var (
	ErrPromotionCooldown = errors.New("employee was promoted less than a year ago")
	ErrPromotionInFuture = errors.New("promotion date cannot be in the future")

	ErrPromotionBeforeLast = errors.New("promotion date cannot be earlier than the last recorded promotion")
)
