// Package seed supplies the static session data the app starts from:
// users, rooms, initial messages, the match schedule, the bot response
// pool and the home-page news. Defaults can be overridden by a YAML
// file; structure is taken as-is, the core does not validate beyond
// shape.
package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/domain"
)

// Data is everything the session is seeded with.
type Data struct {
	CurrentUser  domain.User                 `mapstructure:"current_user"`
	Users        []domain.User               `mapstructure:"users"`
	Bot          domain.User                 `mapstructure:"bot"`
	Rooms        []domain.Room               `mapstructure:"rooms"`
	Messages     map[string][]domain.Message `mapstructure:"messages"`
	Matches      []domain.Match              `mapstructure:"matches"`
	BotResponses []string                    `mapstructure:"bot_responses"`
	News         []domain.NewsItem           `mapstructure:"news"`
}

// Load returns the seed from the given YAML file, or the built-in
// defaults when path is empty or the file does not exist.
func Load(path string) (Data, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data Data
	if err := v.Unmarshal(&data); err != nil {
		return Data{}, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return data, nil
}

// Default mirrors the mocked page state the app shipped with.
func Default() Data {
	now := time.Now()
	at := func(ago time.Duration) int64 { return now.Add(-ago).UnixMilli() }

	currentUser := domain.User{
		ID:     "123",
		Name:   "FURIA_Fan",
		Avatar: "https://placehold.co/100/121212/ffdd00?text=FF",
	}
	fans := []domain.User{
		{ID: "456", Name: "CS_Legend", Avatar: "https://placehold.co/100/121212/ffdd00?text=CL"},
		{ID: "789", Name: "YellowPower", Avatar: "https://placehold.co/100/121212/ffdd00?text=YP"},
		{ID: "101", Name: "BrazilFan", Avatar: "https://placehold.co/100/121212/ffdd00?text=BF"},
	}
	botUser := domain.User{
		ID:     "bot",
		Name:   "Bot FURIA",
		Avatar: "https://placehold.co/100/121212/ffdd00?text=FB",
	}

	rooms := []domain.Room{
		{Key: domain.RoomGeneral, Name: "Chat Geral"},
		{Key: "csgo", Name: "CS:GO", Icon: "🔫"},
		{Key: "valorant", Name: "VALORANT", Icon: "🎯"},
		{Key: "lol", Name: "League of Legends", Icon: "⚔️"},
		{Key: "dota2", Name: "Dota 2", Icon: "🛡️"},
		{Key: "r6", Name: "Rainbow Six Siege", Icon: "🚨"},
		{Key: "fortnite", Name: "Fortnite", Icon: "🏗️"},
		{Key: "apex", Name: "Apex Legends", Icon: "🏆"},
		{Key: "fifa", Name: "FIFA", Icon: "⚽"},
		{Key: domain.RoomMatch, Name: "Discussão da Partida"},
		{Key: domain.RoomTactics, Name: "Táticas e Análises"},
	}

	messages := map[string][]domain.Message{
		domain.RoomGeneral: {
			{ID: "1", Text: "Bem-vindo ao Chat de Fãs da FURIA! Aqui você pode discutir sobre todos os jogos e equipes da organização.", User: botUser, Timestamp: at(time.Hour)},
			{ID: "2", Text: "Olá pessoal! Animado para a partida de hoje contra a NAVI!", User: fans[0], Timestamp: at(30 * time.Minute)},
			{ID: "3", Text: "A FURIA tem estado em ótima forma ultimamente! Acho que temos boas chances hoje.", User: fans[1], Timestamp: at(15 * time.Minute)},
			{ID: "4", Text: "Alguém sabe quem vai começar jogando hoje?", User: fans[2], Timestamp: at(10 * time.Minute)},
		},
		"csgo": {
			{ID: "cs1", Text: "Bem-vindo ao chat de CS:GO! Discuta sobre os jogos, táticas e jogadores da FURIA CS:GO aqui.", User: botUser, Timestamp: at(50 * time.Minute)},
		},
		"valorant": {
			{ID: "val1", Text: "Bem-vindo ao chat de VALORANT! Compartilhe suas opiniões sobre o time de VALORANT da FURIA.", User: botUser, Timestamp: at(47 * time.Minute)},
		},
		"lol": {
			{ID: "lol1", Text: "Bem-vindo ao chat de League of Legends! Aqui você pode discutir sobre o desempenho do time da FURIA no CBLOL.", User: botUser, Timestamp: at(45 * time.Minute)},
		},
	}

	matches := []domain.Match{
		{ID: "1", Opponent: "Liquid", Tournament: "ESL Pro League Season 19",
			Date: "2025-05-05", Time: "15:30", Status: domain.MatchUpcoming},
		{ID: "2", Opponent: "NAVI", Tournament: "ESL Pro League Season 19",
			Date: "2025-05-04", Time: "13:00", Status: domain.MatchLive,
			Map: "Mirage", Score: &domain.Score{Furia: 8, Opponent: 6}},
		{ID: "3", Opponent: "Cloud9", Tournament: "ESL Pro League Season 19",
			Date: "2025-05-03", Time: "11:00", Status: domain.MatchFinished,
			Map: "Inferno", Score: &domain.Score{Furia: 16, Opponent: 11}},
	}

	botResponses := []string{
		"Não esqueça de conferir os novos produtos da FURIA na loja oficial!",
		"A FURIA venceu os últimos 3 confrontos contra essa equipe. Boas perspectivas para hoje!",
		"O pool de mapas atual para este torneio é Mirage, Inferno, Nuke, Vertigo, Anubis, Overpass e Ancient.",
		"Você sabia? A FURIA tem a maior porcentagem de vitórias em Mirage nesta temporada.",
		"Não deixe de seguir a FURIA nas redes sociais para as últimas atualizações e conteúdo dos bastidores!",
	}

	news := []domain.NewsItem{
		{ID: 1, Title: "FURIA avança para as semifinais",
			Description: "Após uma partida acirrada contra a Team Liquid, a FURIA garante sua vaga nas semifinais.",
			Image:       "https://placehold.co/600x400/000000/ffffff?text=Notícias+FURIA", Date: "2025-05-04"},
		{ID: 2, Title: "Destaque do jogador: kscerato",
			Description: "Uma análise detalhada do jogador estrela da FURIA e seu impacto nas partidas recentes.",
			Image:       "https://placehold.co/600x400/000000/ffffff?text=Destaque+Jogador", Date: "2025-05-03"},
		{ID: 3, Title: "Novos produtos FURIA disponíveis",
			Description: "Confira as novas camisetas e equipamentos da FURIA em nossa loja online.",
			Image:       "https://placehold.co/600x400/000000/ffffff?text=Produtos+FURIA", Date: "2025-05-02"},
	}

	return Data{
		CurrentUser:  currentUser,
		Users:        fans,
		Bot:          botUser,
		Rooms:        rooms,
		Messages:     messages,
		Matches:      matches,
		BotResponses: botResponses,
		News:         news,
	}
}
