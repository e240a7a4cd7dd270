package cpu

// Mnemonic is the assembler name of an instruction.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_NOP  = Mnemonic(0)  // NOP
	OP_LXI  = Mnemonic(1)  // LXI
	OP_DAD  = Mnemonic(2)  // DAD
	OP_STAX = Mnemonic(3)  // STAX
	OP_LDAX = Mnemonic(4)  // LDAX
	OP_SHLD = Mnemonic(5)  // SHLD
	OP_LHLD = Mnemonic(6)  // LHLD
	OP_STA  = Mnemonic(7)  // STA
	OP_LDA  = Mnemonic(8)  // LDA
	OP_INX  = Mnemonic(9)  // INX
	OP_DCX  = Mnemonic(10) // DCX
	OP_INR  = Mnemonic(11) // INR
	OP_DCR  = Mnemonic(12) // DCR
	OP_MVI  = Mnemonic(13) // MVI
	OP_RLC  = Mnemonic(14) // RLC
	OP_RRC  = Mnemonic(15) // RRC
	OP_RAL  = Mnemonic(16) // RAL
	OP_RAR  = Mnemonic(17) // RAR
	OP_DAA  = Mnemonic(18) // DAA
	OP_CMA  = Mnemonic(19) // CMA
	OP_STC  = Mnemonic(20) // STC
	OP_CMC  = Mnemonic(21) // CMC
	OP_MOV  = Mnemonic(22) // MOV
	OP_HLT  = Mnemonic(23) // HLT
	OP_ADD  = Mnemonic(24) // ADD
	OP_ADC  = Mnemonic(25) // ADC
	OP_SUB  = Mnemonic(26) // SUB
	OP_SBB  = Mnemonic(27) // SBB
	OP_ANA  = Mnemonic(28) // ANA
	OP_XRA  = Mnemonic(29) // XRA
	OP_ORA  = Mnemonic(30) // ORA
	OP_CMP  = Mnemonic(31) // CMP
	OP_RNZ  = Mnemonic(32) // RNZ
	OP_RZ   = Mnemonic(33) // RZ
	OP_RNC  = Mnemonic(34) // RNC
	OP_RC   = Mnemonic(35) // RC
	OP_RPO  = Mnemonic(36) // RPO
	OP_RPE  = Mnemonic(37) // RPE
	OP_RP   = Mnemonic(38) // RP
	OP_RM   = Mnemonic(39) // RM
	OP_JNZ  = Mnemonic(40) // JNZ
	OP_JZ   = Mnemonic(41) // JZ
	OP_JNC  = Mnemonic(42) // JNC
	OP_JC   = Mnemonic(43) // JC
	OP_JPO  = Mnemonic(44) // JPO
	OP_JPE  = Mnemonic(45) // JPE
	OP_JP   = Mnemonic(46) // JP
	OP_JM   = Mnemonic(47) // JM
	OP_CNZ  = Mnemonic(48) // CNZ
	OP_CZ   = Mnemonic(49) // CZ
	OP_CNC  = Mnemonic(50) // CNC
	OP_CC   = Mnemonic(51) // CC
	OP_CPO  = Mnemonic(52) // CPO
	OP_CPE  = Mnemonic(53) // CPE
	OP_CP   = Mnemonic(54) // CP
	OP_CM   = Mnemonic(55) // CM
	OP_ADI  = Mnemonic(56) // ADI
	OP_ACI  = Mnemonic(57) // ACI
	OP_SUI  = Mnemonic(58) // SUI
	OP_SBI  = Mnemonic(59) // SBI
	OP_ANI  = Mnemonic(60) // ANI
	OP_XRI  = Mnemonic(61) // XRI
	OP_ORI  = Mnemonic(62) // ORI
	OP_CPI  = Mnemonic(63) // CPI
	OP_POP  = Mnemonic(64) // POP
	OP_PUSH = Mnemonic(65) // PUSH
	OP_RET  = Mnemonic(66) // RET
	OP_JMP  = Mnemonic(67) // JMP
	OP_CALL = Mnemonic(68) // CALL
	OP_RST  = Mnemonic(69) // RST
	OP_OUT  = Mnemonic(70) // OUT
	OP_IN   = Mnemonic(71) // IN
	OP_XTHL = Mnemonic(72) // XTHL
	OP_PCHL = Mnemonic(73) // PCHL
	OP_XCHG = Mnemonic(74) // XCHG
	OP_SPHL = Mnemonic(75) // SPHL
	OP_DI   = Mnemonic(76) // DI
	OP_EI   = Mnemonic(77) // EI
)
