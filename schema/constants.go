package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// Algorithm represents a forecasting algorithm selectable on the CLI.
	Algorithm string

	// ModelID identifies a forecasting model inside the ensemble.
	ModelID string

	// TrendDirection represents the direction of a numeric series.
	TrendDirection string

	// CastMethod represents the way trigrams are derived for a reading.
	CastMethod string

	// Element represents one of the five elemental classes.
	Element string

	// Relation represents the elemental relation between two elements.
	Relation string

	// Tier represents the outcome tier of a reading verdict.
	Tier string

	// SpiritRole represents the keyword-selected target spirit category.
	SpiritRole string

	// DatabaseBackend represents the storage backend for history records.
	DatabaseBackend string

	// RecordKind represents the origin of a history record.
	RecordKind string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All forecasting algorithms supported.
const (
	EnsembleAlgorithm Algorithm = "ensemble" // default
	MAAlgorithm       Algorithm = "ma"
	EMAAlgorithm      Algorithm = "ema"
	LinearAlgorithm   Algorithm = "linear"
	TrendAlgorithm    Algorithm = "trend"
)

// Model identifiers used as keys in the ensemble prediction map.
const (
	MovingAverageModel ModelID = "ma"
	ExpSmoothingModel  ModelID = "ema"
	LinearModel        ModelID = "linear"
)

// All trend directions.
const (
	RisingTrend      TrendDirection = "rising"
	FallingTrend     TrendDirection = "falling"
	OscillatingTrend TrendDirection = "oscillating"
	UnknownTrend     TrendDirection = "unknown"
)

// All casting methods supported.
const (
	TimeMethod      CastMethod = "time" // default
	DirectionMethod CastMethod = "direction"
	RandomMethod    CastMethod = "random"
)

// The five elements.
const (
	Wood  Element = "wood"
	Fire  Element = "fire"
	Earth Element = "earth"
	Metal Element = "metal"
	Water Element = "water"
)

// All elemental relations. The first element of an ordered pair is the
// subject: "generating" means it generates the second, "generated-by" means
// the second generates it, and likewise for restraint.
const (
	ParityRelation       Relation = "parity"
	GeneratingRelation   Relation = "generating"
	GeneratedByRelation  Relation = "generated-by"
	RestrainingRelation  Relation = "restraining"
	RestrainedByRelation Relation = "restrained-by"
	UnrelatedRelation    Relation = "unrelated"
)

// All verdict tiers.
const (
	AuspiciousTier   Tier = "auspicious"
	InauspiciousTier Tier = "inauspicious"
	BalancedTier     Tier = "balanced"
)

// All target spirit roles.
const (
	WealthSpirit  SpiritRole = "wealth"
	CareerSpirit  SpiritRole = "career"
	StudySpirit   SpiritRole = "study"
	GeneralSpirit SpiritRole = "general" // fallback when no keyword matches
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	JSONBackend       DatabaseBackend = "json"
	NoneBackend       DatabaseBackend = "none"
)

// All history record kinds.
const (
	OracleRecord   RecordKind = "oracle"
	ForecastRecord RecordKind = "forecast"
	CastRecord     RecordKind = "cast"
)

// AllElements returns a list of all five elements in generation order.
var AllElements = []Element{Wood, Fire, Earth, Metal, Water}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidAlgorithms lists all valid forecasting algorithms.
var ValidAlgorithms = map[Algorithm]struct{}{
	EnsembleAlgorithm: {},
	MAAlgorithm:       {},
	EMAAlgorithm:      {},
	LinearAlgorithm:   {},
	TrendAlgorithm:    {},
}

// ValidCastMethods lists all valid casting methods.
var ValidCastMethods = map[CastMethod]struct{}{
	TimeMethod:      {},
	DirectionMethod: {},
	RandomMethod:    {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	JSONBackend:       {},
	NoneBackend:       {},
}
