package contextkeys

// ContextKey is a typed key for values stored in request contexts.
type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (pool or transaction) a
	// request should run against. Tests inject a transaction here.
	DBContextKey ContextKey = "db"
)
