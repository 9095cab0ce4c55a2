package fixture

import "github.com/preston-bernstein/nba-roster-builder/internal/domain/players"

// Players returns the deterministic built-in set: three players per position.
func Players() []players.Player {
	return []players.Player{
		{ID: 1, Name: "Stephen Curry", Position: players.PositionBase, Team: "Golden State Warriors", Country: "Estados Unidos", Age: 36, Height: 1.88, University: "Davidson", PointsPerGame: 26.4, ReboundsPerGame: 4.5, AssistsPerGame: 5.1, GamesPlayed: 74, EffectiveShootingPct: 56.9},
		{ID: 2, Name: "Luka Dončić", Position: players.PositionBase, Team: "Dallas Mavericks", Country: "Eslovenia", Age: 25, Height: 2.01, PointsPerGame: 33.9, ReboundsPerGame: 9.2, AssistsPerGame: 9.8, GamesPlayed: 70, EffectiveShootingPct: 55.2},
		{ID: 3, Name: "Tyrese Haliburton", Position: players.PositionBase, Team: "Indiana Pacers", Country: "Estados Unidos", Age: 24, Height: 1.96, University: "Iowa State", PointsPerGame: 20.1, ReboundsPerGame: 3.9, AssistsPerGame: 10.9, GamesPlayed: 69, EffectiveShootingPct: 59.0},
		{ID: 4, Name: "Devin Booker", Position: players.PositionEscolta, Team: "Phoenix Suns", Country: "Estados Unidos", Age: 27, Height: 1.96, University: "Kentucky", PointsPerGame: 27.1, ReboundsPerGame: 4.5, AssistsPerGame: 6.9, GamesPlayed: 68, EffectiveShootingPct: 54.6},
		{ID: 5, Name: "Anthony Edwards", Position: players.PositionEscolta, Team: "Minnesota Timberwolves", Country: "Estados Unidos", Age: 22, Height: 1.93, University: "Georgia", PointsPerGame: 25.9, ReboundsPerGame: 5.4, AssistsPerGame: 5.1, GamesPlayed: 79, EffectiveShootingPct: 53.5},
		{ID: 6, Name: "Donovan Mitchell", Position: players.PositionEscolta, Team: "Cleveland Cavaliers", Country: "Estados Unidos", Age: 27, Height: 1.85, University: "Louisville", PointsPerGame: 26.6, ReboundsPerGame: 5.1, AssistsPerGame: 6.1, GamesPlayed: 55, EffectiveShootingPct: 53.4},
		{ID: 7, Name: "Jayson Tatum", Position: players.PositionAlero, Team: "Boston Celtics", Country: "Estados Unidos", Age: 26, Height: 2.03, University: "Duke", PointsPerGame: 26.9, ReboundsPerGame: 8.1, AssistsPerGame: 4.9, GamesPlayed: 74, EffectiveShootingPct: 55.5},
		{ID: 8, Name: "Kevin Durant", Position: players.PositionAlero, Team: "Phoenix Suns", Country: "Estados Unidos", Age: 35, Height: 2.11, University: "Texas", PointsPerGame: 27.1, ReboundsPerGame: 6.6, AssistsPerGame: 5.0, GamesPlayed: 75, EffectiveShootingPct: 58.5},
		{ID: 9, Name: "LeBron James", Position: players.PositionAlero, Team: "Los Angeles Lakers", Country: "Estados Unidos", Age: 39, Height: 2.06, PointsPerGame: 25.7, ReboundsPerGame: 7.3, AssistsPerGame: 8.3, GamesPlayed: 71, EffectiveShootingPct: 60.6},
		{ID: 10, Name: "Giannis Antetokounmpo", Position: players.PositionAlaPivot, Team: "Milwaukee Bucks", Country: "Grecia", Age: 29, Height: 2.11, PointsPerGame: 30.4, ReboundsPerGame: 11.5, AssistsPerGame: 6.5, GamesPlayed: 73, EffectiveShootingPct: 62.2},
		{ID: 11, Name: "Anthony Davis", Position: players.PositionAlaPivot, Team: "Los Angeles Lakers", Country: "Estados Unidos", Age: 31, Height: 2.08, University: "Kentucky", PointsPerGame: 24.7, ReboundsPerGame: 12.6, AssistsPerGame: 3.5, GamesPlayed: 76, EffectiveShootingPct: 56.4},
		{ID: 12, Name: "Pascal Siakam", Position: players.PositionAlaPivot, Team: "Indiana Pacers", Country: "Camerún", Age: 30, Height: 2.03, University: "New Mexico State", PointsPerGame: 21.3, ReboundsPerGame: 7.8, AssistsPerGame: 3.7, GamesPlayed: 80, EffectiveShootingPct: 56.3},
		{ID: 13, Name: "Nikola Jokić", Position: players.PositionPivot, Team: "Denver Nuggets", Country: "Serbia", Age: 29, Height: 2.11, PointsPerGame: 26.4, ReboundsPerGame: 12.4, AssistsPerGame: 9.0, GamesPlayed: 79, EffectiveShootingPct: 61.1},
		{ID: 14, Name: "Joel Embiid", Position: players.PositionPivot, Team: "Philadelphia 76ers", Country: "Camerún", Age: 30, Height: 2.13, University: "Kansas", PointsPerGame: 34.7, ReboundsPerGame: 11.0, AssistsPerGame: 5.6, GamesPlayed: 39, EffectiveShootingPct: 55.6},
		{ID: 15, Name: "Victor Wembanyama", Position: players.PositionPivot, Team: "San Antonio Spurs", Country: "Francia", Age: 20, Height: 2.24, PointsPerGame: 21.4, ReboundsPerGame: 10.6, AssistsPerGame: 3.9, GamesPlayed: 71, EffectiveShootingPct: 51.7},
	}
}
