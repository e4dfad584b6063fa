// Package registry provides a client for the Maestro schema registry: a
// service that stores named, versioned, content-addressed metric schema
// definitions and returns opaque ids for later retrieval.
//
// The client converts metricschema definitions to and from the canonical
// JSON wire form, accumulates streamed response bodies in growable
// buffers, and addresses schemas by id, by human-readable name, or by
// content digest.
//
// Basic Usage:
//
//	import "github.com/ovis-hpc/maestro/v1/registry"
//
//	cli, err := registry.NewClient(registry.Config{
//	    URLs:   []string{"https://head1:8080", "https://head2:8080"},
//	    CACert: "/db/cert.pem", // Optional, for self-signed deployments
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Register a schema
//	sch := metricschema.New("meminfo")
//	sch.AddMetric("free", "kB", vtype.U64)
//	id, err := cli.Add(ctx, sch)
//
//	// Retrieve it later, on any node
//	sch, err = cli.Get(ctx, id)
//
//	// Browse the registry
//	names, err := cli.ListNames(ctx)
//	ids, err := cli.ListIDs(ctx, "meminfo", nil)
//	digests, err := cli.ListDigests(ctx)
//	ids, err = cli.ListIDs(ctx, "", &digests[0])
//
// REST surface:
//
//	POST   <base>                              add schema
//	GET    <base>/schemas/ids/{id}             get schema
//	DELETE <base>/schemas/ids/{id}             delete schema
//	GET    <base>/names                        list names
//	GET    <base>/names/{name}/versions        list ids by name
//	GET    <base>/digests                      list digests
//	GET    <base>/digests/{hex}/versions       list ids by digest
//
// Availability:
//
// A client accepts multiple registry URLs. Requests go to the current
// URL; when a server cannot be reached the client advances to the next
// URL round-robin and retries, giving up after every URL has been tried
// once for that call. Completed requests with an error status are not
// retried.
//
// The client performs no caching, no retry beyond the URL rotation, and
// no logging of its own. Attach an observability.Observer (see
// v1/metrics for a Prometheus-backed one) to watch operations.
package registry
