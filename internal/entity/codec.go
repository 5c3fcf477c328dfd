package entity

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
)

const (
	rowPrefix = '*'

	borderChar = '*'
	emptyChar  = ' '
	bodyNone   = '.'
)

var (
	listPattern    = regexp.MustCompile(`\[(.*?)]`)
	statsPattern   = regexp.MustCompile(`Stats\((.*?)\)`)
	statsArgs      = regexp.MustCompile(`^\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*\[(.*?)]\s*$`)
	originPattern  = regexp.MustCompile(`\(\s*(\d+)\s*,\s*(\d+)\s*\)`)
	bodyNeighbours = []GridPoint{{Row: 0, Col: -1}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
)

// metadata holds the optional key=value lines that follow the board rows.
type metadata struct {
	reordering []int
	origins    []GridPoint
	stats      *Stats
}

// ParseGameState decodes the textual board format. Every row starts with '*'
// and holds pairs of characters: the cell ('*', a digit or a space) followed
// by the body layer ('.', a lowercase tail or an uppercase head letter).
// Any other non-empty line is a key=value metadata entry.
func ParseGameState(text string) (*GameState, error) {
	var rows, rest []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line[0] == rowPrefix {
			rows = append(rows, line)
		} else {
			rest = append(rest, line)
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w", apperror.ErrParse, apperror.ErrEmptyBoard)
	}

	m := len(rows)
	n := 0
	for _, row := range rows {
		n = max(n, len(row)/2)
	}

	field := NewField(m, n)
	bodies := make([][]byte, m)
	heads := make(map[int]GridPoint)
	maxPlayer := -1

	for i, row := range rows {
		bodies[i] = make([]byte, n)
		for j := 0; j < n; j++ {
			cellChar, bodyChar := byte(emptyChar), byte(bodyNone)
			if 2*j < len(row) {
				cellChar = row[2*j]
			}
			if 2*j+1 < len(row) {
				bodyChar = row[2*j+1]
			}
			bodies[i][j] = bodyChar

			switch {
			case cellChar == borderChar:
				field.Cells[i][j] = Border()
			case '0' <= cellChar && cellChar <= '9':
				owner := int(cellChar - '0')
				field.Cells[i][j] = Owned(uint8(owner))
				maxPlayer = max(maxPlayer, owner)
			}

			if 'A' <= bodyChar && bodyChar <= 'Z' {
				k := int(bodyChar - 'A')
				if _, ok := heads[k]; ok {
					return nil, fmt.Errorf("%w: player %c has more than one head", apperror.ErrParse, bodyChar)
				}
				heads[k] = GridPoint{Row: i, Col: j}
				maxPlayer = max(maxPlayer, k)
			}
		}
	}

	meta, err := parseMetadata(rest)
	if err != nil {
		return nil, err
	}

	np, err := meta.playerCount(maxPlayer + 1)
	if err != nil {
		return nil, err
	}

	players := make([]Player, np)
	for k, head := range heads {
		players[k] = Player{Body: traceBody(bodies, head, playerTailChar(k))}
	}

	state := &GameState{
		Field:       field,
		Players:     players,
		PlayerNames: defaultPlayerNames(np),
		Reordering:  meta.reordering,
		Origins:     meta.origins,
	}

	if state.Reordering == nil {
		state.Reordering = DefaultPermutation(np)
	}
	if state.Origins == nil {
		if np > 4 && perimeter(m, n) <= 0 {
			return nil, fmt.Errorf("%w: no perimeter to place %d players on a %dx%d board", apperror.ErrParse, np, m, n)
		}
		state.Origins = NewOrigins(m, n, DefaultPermutation(np))
	}
	if meta.stats != nil {
		state.Stats = *meta.stats
	} else {
		state.Stats = countStats(field, np)
	}

	return state, nil
}

// traceBody rebuilds a body by walking from the head to adjacent tail cells
// of the same player until no unvisited one is left. The result is tail first.
func traceBody(layer [][]byte, head GridPoint, tail byte) []GridPoint {
	rows, cols := len(layer), len(layer[0])
	body := []GridPoint{head}
	visited := map[GridPoint]bool{head: true}

	cur := head
	for steps := 0; steps < rows*cols; steps++ {
		next, ok := GridPoint{}, false
		for _, d := range bodyNeighbours {
			p := GridPoint{
				Row: clamp(cur.Row+d.Row, 0, rows-1),
				Col: clamp(cur.Col+d.Col, 0, cols-1),
			}
			if !visited[p] && layer[p.Row][p.Col] == tail {
				next, ok = p, true
				break
			}
		}

		if !ok {
			break
		}

		visited[next] = true
		body = append(body, next)
		cur = next
	}

	slices.Reverse(body)

	return body
}

func parseMetadata(lines []string) (*metadata, error) {
	meta := &metadata{}

	for _, line := range lines {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: metadata line %q is not key=value", apperror.ErrParse, line)
		}

		var err error
		switch strings.TrimSpace(key) {
		case "reordering":
			meta.reordering, err = parseReordering(value)
		case "stats":
			meta.stats, err = parseStats(value)
		case "origins":
			meta.origins, err = parseOrigins(value)
		}

		if err != nil {
			return nil, err
		}
	}

	return meta, nil
}

// playerCount reconciles the number of players seen on the board with the
// lengths of the metadata lists. Lists may name eliminated trailing players
// but must agree with each other.
func (that *metadata) playerCount(onBoard int) (int, error) {
	np := onBoard
	if that.reordering != nil {
		np = max(np, len(that.reordering))
	}
	if that.origins != nil {
		np = max(np, len(that.origins))
	}
	if that.stats != nil {
		np = max(np, len(that.stats.Scores))
	}

	if that.reordering != nil {
		if len(that.reordering) != np {
			return 0, fmt.Errorf("%w: reordering has %d entries, want %d", apperror.ErrParse, len(that.reordering), np)
		}
		for k := 0; k < np; k++ {
			if !slices.Contains(that.reordering, k) {
				return 0, fmt.Errorf("%w: reordering is not a permutation of %d players", apperror.ErrParse, np)
			}
		}
	}

	if that.origins != nil && len(that.origins) != np {
		return 0, fmt.Errorf("%w: origins has %d entries, want %d", apperror.ErrParse, len(that.origins), np)
	}

	if that.stats != nil && len(that.stats.Scores) != np {
		return 0, fmt.Errorf("%w: stats has %d scores, want %d", apperror.ErrParse, len(that.stats.Scores), np)
	}

	return np, nil
}

func parseReordering(value string) ([]int, error) {
	caps := listPattern.FindStringSubmatch(value)
	if caps == nil {
		return nil, fmt.Errorf("%w: reordering %q is not a list", apperror.ErrParse, value)
	}

	return parseIntList(caps[1])
}

func parseStats(value string) (*Stats, error) {
	caps := statsPattern.FindStringSubmatch(value)
	if caps == nil {
		return nil, fmt.Errorf("%w: stats %q is not Stats(...)", apperror.ErrParse, value)
	}

	args := statsArgs.FindStringSubmatch(caps[1])
	if args == nil {
		return nil, fmt.Errorf("%w: stats arguments %q", apperror.ErrParse, caps[1])
	}

	counters := make([]int, 5)
	for i := range counters {
		v, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: stats counter %q: %w", apperror.ErrParse, args[i+1], err)
		}
		counters[i] = v
	}

	scores, err := parseIntList(args[6])
	if err != nil {
		return nil, err
	}

	return &Stats{
		Iteration:       counters[0],
		FilledCount:     counters[1],
		HeadToHeadCount: counters[2],
		OuroborosCount:  counters[3],
		BiteCount:       counters[4],
		Scores:          scores,
	}, nil
}

func parseOrigins(value string) ([]GridPoint, error) {
	caps := listPattern.FindStringSubmatch(value)
	if caps == nil {
		return nil, fmt.Errorf("%w: origins %q is not a list", apperror.ErrParse, value)
	}

	origins := []GridPoint{}
	for _, tuple := range originPattern.FindAllStringSubmatch(caps[1], -1) {
		row, err := strconv.Atoi(tuple[1])
		if err != nil {
			return nil, fmt.Errorf("%w: origin row %q: %w", apperror.ErrParse, tuple[1], err)
		}

		col, err := strconv.Atoi(tuple[2])
		if err != nil {
			return nil, fmt.Errorf("%w: origin col %q: %w", apperror.ErrParse, tuple[2], err)
		}

		origins = append(origins, GridPoint{Row: row, Col: col})
	}

	return origins, nil
}

func parseIntList(s string) ([]int, error) {
	list := []int{}
	if strings.TrimSpace(s) == "" {
		return list, nil
	}

	for _, item := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			return nil, fmt.Errorf("%w: list item %q: %w", apperror.ErrParse, item, err)
		}
		list = append(list, v)
	}

	return list, nil
}

// String encodes the state in the same format ParseGameState reads.
func (that *GameState) String() string {
	m, n := that.Dimensions()

	cells := make([][]byte, m)
	bodies := make([][]byte, m)
	for i := 0; i < m; i++ {
		cells[i] = make([]byte, n)
		bodies[i] = make([]byte, n)
		for j := 0; j < n; j++ {
			bodies[i][j] = bodyNone

			cell := that.Field.Cells[i][j]
			switch cell.Kind {
			case CellBorder:
				cells[i][j] = borderChar
			case CellOwned:
				cells[i][j] = '0' + cell.Owner
			default:
				cells[i][j] = emptyChar
			}
		}
	}

	for k, player := range that.Players {
		for l, p := range player.Body {
			if l == len(player.Body)-1 {
				bodies[p.Row][p.Col] = playerHeadChar(k)
			} else {
				bodies[p.Row][p.Col] = playerTailChar(k)
			}
		}
	}

	var sb strings.Builder
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sb.WriteByte(cells[i][j])
			sb.WriteByte(bodies[i][j])
		}
		sb.WriteByte('\n')
	}

	np := len(that.Players)

	reordering := that.Reordering
	if reordering == nil {
		reordering = DefaultPermutation(np)
	}

	originPoints := that.Origins
	if originPoints == nil {
		originPoints = NewOrigins(m, n, reordering)
	}

	origins := make([]string, len(originPoints))
	for i, p := range originPoints {
		origins[i] = p.String()
	}

	scores := that.Stats.Scores
	if scores == nil {
		scores = make([]int, np)
	}

	fmt.Fprintf(&sb, "reordering=[%s]\n", joinInts(reordering))
	fmt.Fprintf(&sb, "stats=Stats(%d,%d,%d,%d,%d,[%s])\n",
		that.Stats.Iteration,
		that.Stats.FilledCount,
		that.Stats.HeadToHeadCount,
		that.Stats.OuroborosCount,
		that.Stats.BiteCount,
		joinInts(scores),
	)
	fmt.Fprintf(&sb, "origins=[%s]", strings.Join(origins, ","))

	return sb.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
