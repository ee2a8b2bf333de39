package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDirectoryID   = errors.New("enterprise name is required")
	ErrInvalidDirectoryID = errors.New("enterprise name may contain only letters, digits, '.', '_' and '-'")
	ErrEmptySecret        = errors.New("access token is required")
	ErrInvalidSecret      = errors.New("access token must not contain whitespace")
	ErrInvalidStartIndex  = errors.New("start index must be at least 1")
	ErrInvalidPageCount   = errors.New("page size must be between 1 and 100")
	ErrEmptyMemberID      = errors.New("member id is required")
	ErrInvalidMemberID    = errors.New("member id contains forbidden characters")
	ErrEmptyRoleID        = errors.New("role is required")
	ErrInvalidRoleID      = errors.New("role contains forbidden characters")
)
