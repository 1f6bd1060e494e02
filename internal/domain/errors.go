package domain

import (
	"fmt"

	appErrors "biodex/internal/errors"
)

func invalidKingdomError(kingdom string) error {
	return appErrors.New(appErrors.CodeInvalidKingdom, fmt.Sprintf("invalid kingdom: %s", kingdom), nil)
}

func invalidRecordError(reason string) error {
	return appErrors.New(appErrors.CodeInvalidRecord, reason, nil)
}
