package querycache

import "net/url"

// Key identifies one cached query: a collection name plus its encoded
// parameters. Equal queries always produce equal keys because url.Values
// encodes in sorted order.
type Key struct {
	Resource string
	Params   string
}

// NewKey builds the key for resource queried with params.
func NewKey(resource string, params url.Values) Key {
	return Key{Resource: resource, Params: params.Encode()}
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Resource
	}
	return k.Resource + "?" + k.Params
}

// ForResource matches every key of the named collection.
func ForResource(name string) func(Key) bool {
	return func(k Key) bool {
		return k.Resource == name
	}
}

// All matches every key.
func All(Key) bool {
	return true
}
