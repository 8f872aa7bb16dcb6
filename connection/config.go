package connection

// Config bundles the connection settings for every store type the worker
// can fetch from. It is decoded from the worker config file and handed to
// the store registry, which passes it to each store handle on construction.
type Config struct {
	Aws *AwsConnection `hcl:"aws,block"`
	Gcp *GcpConnection `hcl:"gcp,block"`

	// FileStoreRoot is the directory file:// containers are resolved
	// against. Defaults to the filesystem root.
	FileStoreRoot *string `hcl:"file_store_root,optional"`
}
