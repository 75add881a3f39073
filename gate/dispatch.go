package gate

import (
	"fmt"
	"net/http"
)

// Dispatch performs the navigation side of a decision. It reports whether the
// response has been written, in which case the caller must render nothing
// further. Allow writes nothing and returns false.
func Dispatch(w http.ResponseWriter, r *http.Request, d Decision) bool {
	switch d.Action {
	case Redirect:
		http.Redirect(w, r, d.Location, http.StatusSeeOther)
		return true
	case Pending:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<p>Loading...</p>`)
		return true
	default:
		return false
	}
}
