package config

const DefaultPath = "config.yml"

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Dataset: DatasetConfig{
			Format:    "json",
			StopsPath: "data/bus-stops.json",
			LegsPath:  "data/routes.json",
		},
		Planner: PlannerConfig{
			Enumeration:       "relaxed",
			SearchLimit:       5,
			MatrixConcurrency: 8,
		},
		Traffic: TrafficConfig{
			Provider:    "synthetic",
			Timeout:     "PT5S",
			CacheExpiry: "PT5M",
		},
		MongoDB: MongoDBConfig{
			Connection: "mongodb://localhost:27017/",
			Database:   "lagosnav",
		},
		Neo4j: Neo4jConfig{
			URI:      "neo4j://localhost",
			Username: "neo4j",
			Database: "neo4j",
		},
	}
}
