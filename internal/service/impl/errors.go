package impl

import "errors"

// ErrInvalidToken covers every token verification failure: bad signature,
// wrong algorithm, expiry, wrong issuer, unparseable subject. The cause is
// deliberately not distinguished to callers.
var ErrInvalidToken = errors.New("invalid token")
