package waf

// DefaultCatalogue returns the built-in payload set used by the Payload
// Prober and the smoke test. Payloads are grounded on the literal attack
// strings the teacher's fingerprint.go hardcoded for its malicious-request
// probes, broadened with the path-traversal/command-injection strings the
// teacher's evasions/command and evasions/path packages already carry as
// base (un-evaded) payloads.
func DefaultCatalogue() map[PayloadCategory][]string {
	return map[PayloadCategory][]string{
		CategoryXSSBasic: {
			`<script>alert(1)</script>`,
			`<img src=x onerror=alert(1)>`,
		},
		CategoryXSSAdvanced: {
			`<svg/onload=alert(String.fromCharCode(88,83,83))>`,
			`javascript:/*--></title></style></textarea></script></xmp><svg/onload='+/"/+/onmouseover=1/+/[*/[]/+alert(1)//'>`,
		},
		CategorySQLiBasic: {
			`' OR '1'='1`,
			`1' OR '1'='1' --`,
		},
		CategorySQLiAdvanced: {
			`1' UNION SELECT username, password FROM users--`,
			`'; DROP TABLE users;--`,
		},
		CategoryPathTraversal: {
			`../../../../etc/passwd`,
			`..%2f..%2f..%2fetc%2fpasswd`,
		},
		CategoryCommandInjection: {
			`; cat /etc/passwd`,
			`| whoami`,
			`$(whoami)`,
		},
		CategoryFileUpload: {
			`../../../../etc/passwd%00.jpg`,
			`shell.php%00.jpg`,
		},
		// ScannerDetection payloads are scanner names, not literal request
		// data: the Payload Prober substitutes the full User-Agent literal
		// from scannerUserAgents for each (spec.md §4.5's special case).
		CategoryScannerDetection: {
			"sqlmap",
			"nikto",
			"shellshock",
		},
		CategoryEnumeration: {
			`/.git/config`,
			`/.env`,
			`/wp-admin/`,
		},
	}
}

// scannerUserAgents maps a ScannerDetection payload name to the realistic
// full User-Agent literal the Payload Prober sends in its place.
var scannerUserAgents = map[string]string{
	"sqlmap":     "sqlmap/1.7.2#stable (http://sqlmap.org)",
	"nikto":      "Mozilla/5.00 (Nikto/2.5.0) (Evasions:None) (Test:map_codes)",
	"shellshock": "() { :; }; /bin/bash -c 'echo vulnerable'",
}
