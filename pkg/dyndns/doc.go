/*
Package dyndns implements the client side of the dyndns2 update protocol.

The Client issues two kinds of GET requests against a provider: a
discovery request whose trimmed plain-text body is the caller's public IP,
and a batched update request carrying comma-joined URL-encoded hostnames,
an optional myip parameter, HTTP Basic credentials, and a client
identification header. Both calls share a process-wide http.Client with a
fixed 15-second timeout.

# Response Protocol

The update response body is newline-delimited, one status line per
submitted hostname, in submission order. ParseResponse classifies each
line, first match wins:

	good <ip>   → Update        hostname was changed
	nochg <ip>  → NoChange      hostname already pointed at the address
	911, dnserr → ServerError   provider-side failure, back off and retry
	badauth, badagent, !donator,
	nohost, notfqdn, numhost,
	abuse       → UserError     operator action required, retrying is futile
	anything else → Unsupported logged and ignored for forward compatibility

Server and user error codes carry remediation text that is logged when the
line is classified. The parser never fails: an unrecognized line is inert,
not fatal, so the pass can still attribute the remaining lines.
*/
package dyndns
