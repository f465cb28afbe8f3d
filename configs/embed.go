package configs

import _ "embed"

// DefaultProperties is the bundled application.yml, used when PROPERTIES_FILE_PATH is not set.
//
//go:embed application.yml
var DefaultProperties []byte

// DefaultMessages is the bundled messages.yml, used when MESSAGES_FILE_PATH is not set.
//
//go:embed messages.yml
var DefaultMessages []byte
