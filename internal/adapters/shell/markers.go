package shell

import (
	"strings"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/zerr"
)

// Markers delimit the output of the wrapped command from whatever the login
// shell prints around it.
const (
	BeginMarker = "-----------------RESO_BEGIN-----------------"
	EndMarker   = "-----------------RESO_END-----------------"
)

// Script wraps cmd so that it runs in dir between the two markers. The end
// marker is only printed when cmd succeeds.
func Script(dir, cmd string) string {
	return "cd " + Quote(dir) + " && echo " + BeginMarker + " && " + cmd + " && echo " + EndMarker
}

// Trim returns the output printed between the markers.
func Trim(output string) (string, error) {
	parts := strings.Split(output, BeginMarker)
	switch {
	case len(parts) < 2:
		return "", zerr.With(zerr.Wrap(domain.ErrMarkerMissing, "unexpected shell output"), "output", output)
	case len(parts) > 2:
		return "", zerr.With(zerr.Wrap(domain.ErrMarkerRepeated, "unexpected shell output"), "output", output)
	}

	body := strings.TrimPrefix(parts[1], "\n")
	parts = strings.Split(body, EndMarker)
	if len(parts) > 2 {
		return "", zerr.With(zerr.Wrap(domain.ErrMarkerRepeated, "unexpected shell output"), "output", output)
	}
	return parts[0], nil
}

// Quote quotes s for a POSIX shell.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, unsafeRune) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

func unsafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("@%+=:,./-_", r)
}

// Join quotes and joins argv into a single command line.
func Join(argv ...string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = Quote(a)
	}
	return strings.Join(quoted, " ")
}
