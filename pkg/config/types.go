package config

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Dataset       DatasetConfig       `yaml:"dataset"`
	Planner       PlannerConfig       `yaml:"planner"`
	Traffic       TrafficConfig       `yaml:"traffic"`
	MongoDB       MongoDBConfig       `yaml:"mongodb"`
	Redis         RedisConfig         `yaml:"redis"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Neo4j         Neo4jConfig         `yaml:"neo4j"`
}

type ServerConfig struct {
	Listen string `yaml:"listen" validate:"required"`
}

type DatasetConfig struct {
	Format      string `yaml:"format" validate:"oneof=json csv mongodb"`
	StopsPath   string `yaml:"stops_path" validate:"required_unless=Format mongodb"`
	LegsPath    string `yaml:"legs_path" validate:"required_unless=Format mongodb"`
	StrictNames bool   `yaml:"strict_names"`
}

type PlannerConfig struct {
	Enumeration       string `yaml:"enumeration" validate:"oneof=relaxed pruned"`
	SearchLimit       int    `yaml:"search_limit" validate:"gte=1"`
	ScoreExpression   string `yaml:"score_expression"`
	MatrixConcurrency int    `yaml:"matrix_concurrency" validate:"gte=1"`
}

type TrafficConfig struct {
	Provider string `yaml:"provider" validate:"oneof=live synthetic"`
	APIKey   string `yaml:"api_key"`

	// ISO 8601 durations, eg PT5S
	Timeout     string `yaml:"timeout" validate:"required"`
	CacheExpiry string `yaml:"cache_expiry" validate:"required"`

	Seed int64 `yaml:"seed"`
}

type MongoDBConfig struct {
	Connection string `yaml:"connection" validate:"required"`
	Database   string `yaml:"database" validate:"required"`
}

// RedisConfig with an empty address disables the traffic cache
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	Database int    `yaml:"database" validate:"gte=0"`
}

type ElasticsearchConfig struct {
	Address  string `yaml:"address"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type Neo4jConfig struct {
	URI      string `yaml:"uri" validate:"required"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database" validate:"required"`
}
