package document

import "go.uber.org/zap"

// Store persists raw document payloads in hash-sharded directories, keyed
// by document id.
type Store struct {
	documentsDir string
	log          *zap.SugaredLogger
}

// Config encapsulates the parameters required to initialize a Store.
type Config struct {
	DocumentsDir string
	Logger       *zap.SugaredLogger
}
