package activities

import "github.com/ManyRagDev/brincar-educando-2/internal/domain"

// DefaultLibrary returns the curated starter library. Activity IDs equal the
// slug so re-seeding overwrites rows in place instead of duplicating them.
func DefaultLibrary() []domain.Activity {
	return []domain.Activity{
		{
			ActivityID:  "circuito-de-almofadas",
			Slug:        "circuito-de-almofadas",
			Title:       "Circuito de almofadas",
			Description: "Monte um caminho de almofadas pela sala e atravesse pulando, rastejando e equilibrando.",
			Energy:      domain.EnergyHigh,
			PrepMinutes: 5,
			Category:    "movimento",
			Benefits:    []string{"coordenação motora", "equilíbrio", "noção espacial"},
			Materials:   []string{"almofadas", "travesseiros"},
			Steps: []string{
				"Espalhe as almofadas formando um caminho.",
				"Mostre como atravessar sem pisar no chão.",
				"Varie: pulando, de quatro, de costas.",
			},
			MinAgeMonths: 18,
			MaxAgeMonths: 72,
		},
		{
			ActivityID:  "caca-ao-tesouro-de-cores",
			Slug:        "caca-ao-tesouro-de-cores",
			Title:       "Caça ao tesouro de cores",
			Description: "Escolha uma cor e saiam juntos pela casa procurando objetos daquela cor.",
			Energy:      domain.EnergyHigh,
			PrepMinutes: 0,
			Category:    "movimento",
			Benefits:    []string{"reconhecimento de cores", "atenção", "vocabulário"},
			Materials:   []string{},
			Steps: []string{
				"Anuncie a cor do dia.",
				"Procurem objetos e reúnam tudo num cesto.",
				"Nomeiem cada achado juntos.",
			},
			MinAgeMonths: 24,
			MaxAgeMonths: 84,
		},
		{
			ActivityID:  "pintura-com-dedos",
			Slug:        "pintura-com-dedos",
			Title:       "Pintura com dedos",
			Description: "Tinta atóxica, papel grande e mãos livres para explorar cores e texturas.",
			Energy:      domain.EnergyMedium,
			PrepMinutes: 10,
			Category:    "arte",
			Benefits:    []string{"expressão criativa", "coordenação fina", "exploração sensorial"},
			Materials:   []string{"tinta atóxica", "papel kraft", "avental"},
			Steps: []string{
				"Forre a mesa e vista o avental.",
				"Ofereça duas ou três cores por vez.",
				"Deixe a criança conduzir, sem modelo a copiar.",
			},
			MinAgeMonths: 12,
			MaxAgeMonths: 60,
		},
		{
			ActivityID:  "massinha-caseira",
			Slug:        "massinha-caseira",
			Title:       "Massinha caseira",
			Description: "Preparem juntos uma massinha de farinha e sal e depois modelem à vontade.",
			Energy:      domain.EnergyMedium,
			PrepMinutes: 15,
			Category:    "arte",
			Benefits:    []string{"coordenação fina", "paciência", "noções de medida"},
			Materials:   []string{"farinha", "sal", "água", "corante alimentício"},
			Steps: []string{
				"Misturem 2 xícaras de farinha, 1 de sal e 1 de água.",
				"Divida e pintem cada parte de uma cor.",
				"Modelem formas livres ou personagens.",
			},
			MinAgeMonths: 24,
			MaxAgeMonths: 96,
		},
		{
			ActivityID:  "cozinha-de-brincadeira",
			Slug:        "cozinha-de-brincadeira",
			Title:       "Cozinha de brincadeira",
			Description: "Potes, colheres de pau e ingredientes de faz de conta para preparar um banquete imaginário.",
			Energy:      domain.EnergyMedium,
			PrepMinutes: 5,
			Category:    "faz-de-conta",
			Benefits:    []string{"imaginação", "linguagem", "sequenciamento"},
			Materials:   []string{"potes plásticos", "colheres", "panos"},
			Steps: []string{
				"Monte uma bancada com os utensílios.",
				"Peça um prato especial e descreva o que quer.",
				"Invertam os papéis: a criança vira a cliente.",
			},
			MinAgeMonths: 24,
			MaxAgeMonths: 72,
		},
		{
			ActivityID:  "hora-da-historia",
			Slug:        "hora-da-historia",
			Title:       "Hora da história",
			Description: "Leitura compartilhada com vozes diferentes para cada personagem.",
			Energy:      domain.EnergyLow,
			PrepMinutes: 0,
			Category:    "calma",
			Benefits:    []string{"vocabulário", "vínculo afetivo", "atenção sustentada"},
			Materials:   []string{"livro infantil"},
			Steps: []string{
				"Escolham o livro juntos.",
				"Leia fazendo vozes e pausas.",
				"Pergunte o que a criança achou do final.",
			},
			MinAgeMonths: 0,
			MaxAgeMonths: 96,
		},
		{
			ActivityID:  "caixa-sensorial",
			Slug:        "caixa-sensorial",
			Title:       "Caixa sensorial",
			Description: "Uma caixa com grãos, tecidos e objetos seguros de texturas variadas para explorar com as mãos.",
			Energy:      domain.EnergyLow,
			PrepMinutes: 10,
			Category:    "sensorial",
			Benefits:    []string{"exploração tátil", "concentração", "autorregulação"},
			Materials:   []string{"caixa ou bacia", "grãos grandes", "retalhos de tecido"},
			Steps: []string{
				"Encha a caixa com os materiais.",
				"Deixe explorar livremente, sempre por perto.",
				"Nomeie as sensações: áspero, macio, gelado.",
			},
			MinAgeMonths: 6,
			MaxAgeMonths: 36,
		},
		{
			ActivityID:  "sombras-na-parede",
			Slug:        "sombras-na-parede",
			Title:       "Sombras na parede",
			Description: "Com o quarto escuro e uma lanterna, criem bichos e histórias de sombra antes de dormir.",
			Energy:      domain.EnergyLow,
			PrepMinutes: 2,
			Category:    "calma",
			Benefits:    []string{"imaginação", "transição para o sono", "vínculo afetivo"},
			Materials:   []string{"lanterna"},
			Steps: []string{
				"Apague as luzes e aponte a lanterna para a parede.",
				"Ensine duas ou três sombras com as mãos.",
				"Inventem uma história curta com os personagens.",
			},
			MinAgeMonths: 18,
			MaxAgeMonths: 84,
		},
		{
			ActivityID:  "danca-das-estatuas",
			Slug:        "danca-das-estatuas",
			Title:       "Dança das estátuas",
			Description: "Música animada, dança livre e todo mundo vira estátua quando a música para.",
			Energy:      domain.EnergyHigh,
			PrepMinutes: 0,
			Category:    "movimento",
			Benefits:    []string{"controle inibitório", "ritmo", "gasto de energia"},
			Materials:   []string{"caixa de som ou celular"},
			Steps: []string{
				"Toque uma música animada e dancem juntos.",
				"Pause a música sem avisar: estátua!",
				"Alterne quem controla a música.",
			},
			MinAgeMonths: 24,
			MaxAgeMonths: 96,
		},
		{
			ActivityID:  "jardim-de-garrafas",
			Slug:        "jardim-de-garrafas",
			Title:       "Jardim de garrafas",
			Description: "Plantem sementes em garrafas cortadas e acompanhem o crescimento dia a dia.",
			Energy:      domain.EnergyMedium,
			PrepMinutes: 20,
			Category:    "natureza",
			Benefits:    []string{"responsabilidade", "paciência", "curiosidade científica"},
			Materials:   []string{"garrafa PET", "terra", "sementes de feijão"},
			Steps: []string{
				"Corte a garrafa e faça furos no fundo.",
				"Plantem as sementes juntos.",
				"Criem o ritual de regar e observar.",
			},
			MinAgeMonths: 30,
			MaxAgeMonths: 96,
		},
	}
}
