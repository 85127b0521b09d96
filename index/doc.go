/*
Package index maps user keys to entity ids, one namespace per key type.

A Store holds a forward bucket per type (key -> id, with keys kept in
first-insertion order) and a reverse table (id -> key per type), so both
key lookup and whole-entity removal stay cheap. Putting a key for an id
that already holds a different key under the same type replaces that key;
putting a key held by another id moves the key over.

The store tracks positions, not names; resolving type names to positions
is the registry package's job.
*/
package index
