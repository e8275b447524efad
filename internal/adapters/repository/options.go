package repository

// Default store configuration constants.
const (
	defaultSQLitePath = "campus.db"
	defaultRedisAddr  = "localhost:6379"
)

type options struct {
	sqlitePath    string
	redisAddr     string
	redisPassword string
	redisDB       int
}

func defaultOptions() options {
	return options{sqlitePath: defaultSQLitePath, redisAddr: defaultRedisAddr}
}

// Option configures Open.
type Option func(*options)

// WithSQLitePath sets the database file for the sqlite driver.
func WithSQLitePath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.sqlitePath = path
		}
	}
}

// WithRedis sets the connection settings for the redis driver.
func WithRedis(addr, password string, db int) Option {
	return func(o *options) {
		if addr != "" {
			o.redisAddr = addr
		}
		o.redisPassword = password
		if db >= 0 {
			o.redisDB = db
		}
	}
}
