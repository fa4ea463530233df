// Package provision builds a whole Event Portal catalog from a declarative plan.
//
// A plan names one application domain and the schemas, events and
// applications to create inside it. Entries refer to each other by name:
// an event names the schema it carries, an application names the events it
// produces and consumes.
//
//	domain:
//	  name: orders
//	  unique_topic_address_enforcement: true
//	schemas:
//	  - name: OrderSchema
//	    version: 1.0.0
//	    content:
//	      file: schemas/order.json
//	events:
//	  - name: OrderCreated
//	    version: 1.0.0
//	    schema: OrderSchema
//	    topic: orders/{region}/created
//	applications:
//	  - name: OrderService
//	    version: 1.0.0
//	    produces: [OrderCreated]
//
// Schema content comes from exactly one source: inline text, a file next
// to the plan, a schema registry subject or id, or an object in a MinIO/S3
// bucket.
//
// Run creates the domain, then all schemas, then all events, then all
// applications. Each create goes through the eventportal client, so objects
// that already exist are reused and, with Config.Overwrite, DRAFT versions
// are patched. Within a phase entries run concurrently; the first error
// stops the run.
//
//	plan, err := provision.LoadPlan("catalog.yaml")
//	if err != nil {
//	    return err
//	}
//	p := provision.NewProvisioner(client, provision.NewContentResolver(nil, nil), provision.Config{Overwrite: true})
//	result, err := p.Run(ctx, plan)
package provision
