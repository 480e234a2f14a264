package handler

// DI for all handlers and models alike.

import (
	homodb "github.com/yumyai/homoindex/pkg/db"
)

type DBContext struct {
	Genus_DB  *homodb.GenusDB
	Stats_DB  *homodb.LookupStatsDB // nil when the stats store is unavailable
	BatchJobs *BatchJobManager
	Version   string
}
