package domain

type Table string

const (
	TableTracks        Table = "tracks"
	TableAlbums        Table = "albums"
	TableIndexerStates Table = "indexer_states"
)
