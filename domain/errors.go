package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidSignature = errors.New("Invalid signature")
)

// ErrorKind classifies why a marketplace call was rejected
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindAuthorization
	KindState
	KindExternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindState:
		return "StateError"
	case KindExternal:
		return "ExternalDependencyError"
	}
	return "UnknownError"
}

type kindError struct {
	kind ErrorKind
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}

func newKindError(kind ErrorKind, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// KindOf returns the kind of the first classified error in err's chain
func KindOf(err error) ErrorKind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	return KindUnknown
}

// validation
var (
	ErrInvalidPrice          = newKindError(KindValidation, "invalid price")
	ErrInvalidAsset          = newKindError(KindValidation, "invalid asset")
	ErrInvalidStartPrice     = newKindError(KindValidation, "invalid start price")
	ErrInvalidDuration       = newKindError(KindValidation, "invalid duration")
	ErrInvalidAddress        = newKindError(KindValidation, "Invalid address")
	ErrInvalidCurrency       = newKindError(KindValidation, "invalid currency")
	ErrFeeTooHigh            = newKindError(KindValidation, "fee too high")
	ErrInsufficientPayment   = newKindError(KindValidation, "insufficient payment")
	ErrBidTooLow             = newKindError(KindValidation, "bid too low")
	ErrUnexpectedNativeValue = newKindError(KindValidation, "native value not accepted for token payment")
)

// authorization
var (
	ErrNotOwner        = newKindError(KindAuthorization, "not owner")
	ErrNotSeller       = newKindError(KindAuthorization, "not seller")
	ErrNotFeeRecipient = newKindError(KindAuthorization, "not fee recipient")
	ErrSellerCannotBid = newKindError(KindAuthorization, "seller cannot bid")
	ErrCannotBuyOwn    = newKindError(KindAuthorization, "cannot buy your own asset")
	ErrNotAdmin        = newKindError(KindAuthorization, "require admin privilege")
)

// state
var (
	ErrNotActive       = newKindError(KindState, "not active")
	ErrAuctionEnded    = newKindError(KindState, "auction ended")
	ErrNotYetEnded     = newKindError(KindState, "auction not yet ended")
	ErrNoPendingReturn = newKindError(KindState, "no pending return")
	ErrReentrantCall   = newKindError(KindState, "reentrant call")
	ErrAssetEngaged    = newKindError(KindState, "asset already listed or in auction")
)

// external dependency
var (
	ErrNotApproved           = newKindError(KindExternal, "marketplace not approved")
	ErrNonexistentAsset      = newKindError(KindExternal, "nonexistent asset")
	ErrInsufficientAllowance = newKindError(KindExternal, "insufficient allowance")
	ErrInsufficientBalance   = newKindError(KindExternal, "insufficient balance")
	ErrNoPriceFeed           = newKindError(KindExternal, "no price feed")
	ErrInvalidFeed           = newKindError(KindExternal, "invalid feed")
	ErrInvalidPriceFeed      = newKindError(KindExternal, "invalid price feed")
	ErrStaleQuote            = newKindError(KindExternal, "stale price quote")
)
