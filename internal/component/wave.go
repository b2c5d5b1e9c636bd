// internal/component/wave.go
package component

import "time"

// Wave — состояние спавнера текущей волны.
type Wave struct {
	Number           int
	EnemiesToSpawn   int       // сколько врагов ещё предстоит выпустить
	NextSpawnAt      time.Time // момент следующего спавна
	InProgress       bool      // волна идёт, пока не опустеет реестр врагов
	SummaryRequested bool      // запрос сводки после волны ещё не вернулся
}

// Spawning reports whether enemies remain to be released.
func (w *Wave) Spawning() bool {
	return w.InProgress && w.EnemiesToSpawn > 0
}
