// internal/component/game_state.go
package component

// GameState — экономика и исход партии.
type GameState struct {
	Gold            int
	Lives           int // целостность крепости в процентах, 0..100
	Wave            int // номер последней начатой волны
	Paused          bool
	GameOver        bool
	LevelIndex      int
	SpeedMultiplier int // 1 или 2
	LevelCleared    bool
}
