package systems

import "github.com/1siamBot/tactics-engine/engine/pathfind"

// AttackPlan is an attack-move: walk MovePath to From, then strike along AttackPath
type AttackPlan struct {
	Enemy      pathfind.Point
	From       pathfind.Point
	MovePath   []pathfind.Point
	AttackPath []pathfind.Point
}

// PlanAttack chooses where a should stand to attack the tile enemy.
//
// Candidates are a's movement tiles other than the enemy tile and not held by
// another actor, within Manhattan attack range of the enemy. The winner has the
// shortest attack path (cover allowed, attack budget), then the smallest Manhattan
// distance. Without a candidate the plan walks toward the enemy and stops on the
// last free tile before it.
func PlanAttack(b *Board, a *Actor, enemy pathfind.Point) (AttackPlan, bool) {
	plan := AttackPlan{Enemy: enemy}
	var scratch []pathfind.Point
	bestSteps, bestDist := -1, 0

	for _, tile := range a.Ranges.Movement() {
		if tile == enemy {
			continue
		}
		if occ, ok := b.OccupantAt(tile); ok && occ != a {
			continue
		}
		dist := tile.Manhattan(enemy)
		if dist > a.AttackRange {
			continue
		}
		var ok bool
		scratch, ok = b.FindPath(tile, enemy, true, a.AttackRange, scratch)
		if !ok {
			continue
		}
		steps := len(scratch) - 1
		if bestSteps < 0 || steps < bestSteps || (steps == bestSteps && dist < bestDist) {
			bestSteps, bestDist = steps, dist
			plan.From = tile
			plan.AttackPath = append(plan.AttackPath[:0], scratch...)
		}
	}

	if bestSteps >= 0 {
		path, ok := b.FindPath(a.Pos, plan.From, false, a.MoveRange, nil)
		if !ok || len(path) == 0 {
			return AttackPlan{}, false
		}
		plan.MovePath = path
		return plan, true
	}

	path, ok := b.FindPath(a.Pos, enemy, false, a.MoveRange, nil)
	if !ok || len(path) < 2 {
		return AttackPlan{}, false
	}
	path = path[:len(path)-1]
	// Stop before tiles held by other actors as well.
	for len(path) > 1 {
		if occ, ok := b.OccupantAt(path[len(path)-1]); !ok || occ == a {
			break
		}
		path = path[:len(path)-1]
	}
	plan.MovePath = path
	plan.From = plan.MovePath[len(plan.MovePath)-1]
	plan.AttackPath, _ = b.FindPath(plan.From, enemy, true, a.AttackRange, nil)
	return plan, true
}
