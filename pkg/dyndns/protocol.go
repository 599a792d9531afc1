package dyndns

import (
	"strings"

	"github.com/burrowlabs/burrow/pkg/log"
	"github.com/burrowlabs/burrow/pkg/types"
	"github.com/rs/zerolog"
)

// Return codes of the dyndns2 protocol. Server errors signal the caller
// should back off before retrying; user errors signal that retrying will
// not help until an operator intervenes.
var (
	serverErrorCodes = map[string]string{
		"911":    "provider-side failure or maintenance, back off for at least 30 minutes before retrying",
		"dnserr": "DNS error on the provider side, back off for at least 30 minutes before retrying",
	}

	userErrorCodes = map[string]string{
		"badauth":  "username or password rejected by the provider",
		"badagent": "this client has been blocked by the provider, update the client before retrying",
		"!donator": "the requested feature requires a paid account",
		"nohost":   "hostname does not exist under this account",
		"notfqdn":  "hostname is not a fully qualified domain name",
		"numhost":  "too many hostnames submitted in a single request",
		"abuse":    "hostname is blocked for update abuse",
	}
)

// ParseResponse classifies each line of an update response body. Lines are
// separated by CR, LF, or both; blank and whitespace-only lines are
// discarded. The result is order-preserving and 1:1 with surviving lines,
// positionally aligned with the hostnames submitted in the same request.
//
// Unknown lines classify as Unsupported rather than failing the pass, so
// protocol additions by the provider stay inert.
func ParseResponse(body string) []types.ResponseLine {
	logger := log.WithComponent("dyndns")

	raw := strings.FieldsFunc(body, func(r rune) bool {
		return r == '\r' || r == '\n'
	})

	var lines []types.ResponseLine
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, classifyLine(logger, l))
	}
	return lines
}

func classifyLine(logger zerolog.Logger, line string) types.ResponseLine {
	switch {
	case strings.HasPrefix(line, "good "):
		return types.ResponseLine{Code: types.ResponseUpdate, Raw: line}
	case strings.HasPrefix(line, "nochg "):
		return types.ResponseLine{Code: types.ResponseNoChange, Raw: line}
	}

	if remedy, ok := serverErrorCodes[line]; ok {
		logger.Warn().Str("code", line).Msg("Provider server error: " + remedy)
		return types.ResponseLine{Code: types.ResponseServerError, Raw: line}
	}

	if remedy, ok := userErrorCodes[line]; ok {
		logger.Error().Str("code", line).Msg("Provider user error: " + remedy)
		return types.ResponseLine{Code: types.ResponseUserError, Raw: line}
	}

	logger.Warn().Str("line", line).Msg("Unrecognized response line")
	return types.ResponseLine{Code: types.ResponseUnsupported, Raw: line}
}
