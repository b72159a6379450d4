package compute

import "github.com/go-gl/gl/v4.3-core/gl"

// Limits are the compute capabilities of the current context
type Limits struct {
	WorkGroupCount  [3]int32
	WorkGroupSize   [3]int32
	MaxInvocations  int32
	SharedMemory    int32
	ProgramBinaries []int32
	ShaderBinaries  []int32
}

// QueryLimits reads the compute limits and supported binary formats
func QueryLimits() Limits {
	var l Limits
	for i := uint32(0); i < 3; i++ {
		gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_COUNT, i, &l.WorkGroupCount[i])
		gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_SIZE, i, &l.WorkGroupSize[i])
	}
	gl.GetIntegerv(gl.MAX_COMPUTE_WORK_GROUP_INVOCATIONS, &l.MaxInvocations)
	gl.GetIntegerv(gl.MAX_COMPUTE_SHARED_MEMORY_SIZE, &l.SharedMemory)

	l.ProgramBinaries = queryList(gl.NUM_PROGRAM_BINARY_FORMATS, gl.PROGRAM_BINARY_FORMATS)
	l.ShaderBinaries = queryList(gl.NUM_SHADER_BINARY_FORMATS, gl.SHADER_BINARY_FORMATS)
	return l
}

func queryList(countName, listName uint32) []int32 {
	var n int32
	gl.GetIntegerv(countName, &n)
	if n <= 0 {
		return nil
	}
	out := make([]int32, n)
	gl.GetIntegerv(listName, &out[0])
	return out
}
