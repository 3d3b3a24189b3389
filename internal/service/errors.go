package service

import (
	"github.com/samber/oops"
)

// CodeStore tags every error that originated in the persistence layer.
const CodeStore = "store_error"

func storeErr(domain string) oops.OopsErrorBuilder {
	return oops.In(domain).Code(CodeStore)
}
