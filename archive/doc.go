// Package archive keeps generated mazes in a Badger key-value store.
//
// Each maze is a Record stored as JSON under "maze/<uuid>". The store is
// safe for concurrent use; every operation runs in its own Badger
// transaction. Open with an empty directory keeps the data in memory, which
// is what tests and throwaway servers use.
package archive
