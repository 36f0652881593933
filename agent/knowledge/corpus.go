package knowledge

// Document is one entry of the technical knowledge base. Key is the stable
// identifier the keyword index points at; Text is the snippet handed to the
// model verbatim.
type Document struct {
	Key  string
	Text string
}

// DefaultCorpus is the built-in product documentation, in insertion order.
// Retrieval ties are broken by this order.
func DefaultCorpus() []Document {
	return []Document{
		{
			Key:  "error",
			Text: "Troubleshooting Errors: For Error Code 404 (Sensor offline), press the 'Reset' button for 5 seconds. Error Code 501 indicates a database sync failure.",
		},
		{
			Key:  "specs",
			Text: "System Maintenance & Hardware: The Hub-V3 device is powered by a CR2032 battery (power source) with a 3-year life. Hardware specs include Zigbee 3.0 wireless protocol and an indoor range of 50 meters.",
		},
		{
			Key:  "setup",
			Text: "Connectivity & Pairing: To pair a new device (connection setup), hold the 'Pair' button until the LED flashes blue. Initial setup requires the mobile app. Pairing mode is active for 60 seconds.",
		},
		{
			Key:  "api",
			Text: "Developer Integration: Authentication for the API requires OAuth2 Bearer Tokens. Webhooks are available via /v2/webhooks using POST requests with JSON payloads.",
		},
	}
}
